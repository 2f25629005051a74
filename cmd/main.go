package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/create_booking"
	dismissNotificationHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/dismiss_notification"
	getBookingsHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/get_bookings"
	getNotificationsHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/get_notifications"
	getRoomHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/get_room"
	getRoomsHandler "github.com/m04kA/HMS-BookingAgent/internal/api/handlers/get_rooms"
	"github.com/m04kA/HMS-BookingAgent/internal/api/middleware"
	"github.com/m04kA/HMS-BookingAgent/internal/config"
	"github.com/m04kA/HMS-BookingAgent/internal/infra/cache/bookingcache"
	"github.com/m04kA/HMS-BookingAgent/internal/integrations/remoteapi"
	bookingsService "github.com/m04kA/HMS-BookingAgent/internal/service/bookings"
	notificationsService "github.com/m04kA/HMS-BookingAgent/internal/service/notifications"
	roomsService "github.com/m04kA/HMS-BookingAgent/internal/service/rooms"
	createBookingUC "github.com/m04kA/HMS-BookingAgent/internal/usecase/create_booking"
	"github.com/m04kA/HMS-BookingAgent/pkg/logger"
	"github.com/m04kA/HMS-BookingAgent/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HMS-BookingAgent...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var gatewayMetrics remoteapi.MetricsCollector
	var bookingMetrics bookingsService.MetricsCollector

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		gatewayMetrics = metricsCollector
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем локальное хранилище бронирований
	store, err := bookingcache.Open(cfg.Cache.File, log)
	if err != nil {
		log.Fatal("Failed to open booking cache %s: %v", cfg.Cache.File, err)
	}
	defer store.Close()
	log.Info("Booking cache opened at %s", cfg.Cache.File)

	// Инициализируем клиента удаленного API
	gateway := remoteapi.NewClient(
		cfg.Gateway.URL,
		time.Duration(cfg.Gateway.Timeout)*time.Second,
		log,
		gatewayMetrics,
	)
	log.Info("Remote API client initialized (url=%s timeout=%ds)", cfg.Gateway.URL, cfg.Gateway.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(gateway, store, bookingMetrics, log)
	roomSvc := roomsService.NewService(gateway, log)
	notificationSvc := notificationsService.NewService(log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingSvc,
		roomSvc,
		notificationSvc,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, roomSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	dismissNotification := dismissNotificationHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований (сервер + локальные несинхронизированные)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Комнаты ---
	// Каталог комнат с фильтрами
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Комната по ID
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	// Текущие уведомления
	api.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)

	// Закрытие уведомления
	api.HandleFunc("/notifications/{notificationId}", dismissNotification.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
