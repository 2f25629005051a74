package bookings

import (
	"context"
	"strings"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
	"github.com/m04kA/HMS-BookingAgent/pkg/localid"
)

// Service движок согласования бронирований.
//
// Создает бронирования через удаленный API с откатом на локальное хранилище,
// при чтении сливает серверные данные с локальным кэшем и держит текущий
// список в наблюдаемом наборе, рассылаемом подписчикам.
//
// Политика деградации: отказ удаленного API никогда не доходит до
// вызывающего как ошибка Create/Cancel/Fetch - данные сохраняются локально,
// меняется лишь авторитетность идентификатора. Единственная ошибка,
// которую видит вызывающий - ErrBookingNotFound при отмене несуществующего
// бронирования.
type Service struct {
	gateway      Gateway
	cache        Cache
	set          *bookingSet
	timeProvider TimeProvider
	metrics      MetricsCollector
	logger       Logger
}

// NewService создает движок и инициализирует наблюдаемый набор из кэша
func NewService(gateway Gateway, cache Cache, metrics MetricsCollector, logger Logger) *Service {
	return &Service{
		gateway:      gateway,
		cache:        cache,
		set:          newBookingSet(cache.ReadAll()),
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Create создает бронирование комнаты.
//
// Считает количество ночей и стоимость, собирает черновик со статусом
// confirmed и пытается сохранить его на сервере. При отказе сервера
// бронированию назначается локальный ID и оно сохраняется только в кэше;
// вызывающий получает успешный результат в обоих случаях.
//
// Корректность порядка дат - ответственность вызывающего слоя; здесь
// инвертированный диапазон дает положительное число ночей за счет модуля.
func (s *Service) Create(ctx context.Context, room *domain.Room, form domain.BookingFormData) (*domain.Booking, error) {
	now := s.timeProvider.Now()

	nights := domain.NumberOfNights(form.CheckInDate, form.CheckOutDate)

	draft := &domain.Booking{
		RoomID:         room.ID,
		RoomName:       room.Name,
		RoomType:       room.Type,
		GuestName:      form.GuestName,
		CheckInDate:    form.CheckInDate,
		CheckOutDate:   form.CheckOutDate,
		NumberOfNights: nights,
		TotalPrice:     domain.TotalPrice(room.Price, nights),
		BookingDate:    now,
		Status:         domain.StatusConfirmed,
	}

	s.logger.Info("Create: booking room=%s guest=%s nights=%d total=%.2f",
		room.ID, form.GuestName, nights, draft.TotalPrice)

	created, err := s.gateway.CreateBooking(ctx, draft)
	if err != nil {
		// Тихая деградация: пользовательское подтверждение бронирования
		// не должно зависеть от доступности сети
		local := *draft
		local.ID = localid.New(now)
		created = &local
		s.logger.Warn("Create: remote create failed, saved locally with id=%s: %v", created.ID, err)
		s.incFallback("create")
	} else {
		s.logger.Info("Create: booking confirmed by server, id=%s", created.ID)
	}

	s.append(created)

	return created, nil
}

// Fetch получает актуальный список бронирований.
//
// При успехе серверный список сливается с локальным кэшем (merge),
// результат записывается обратно в кэш и публикуется подписчикам.
// При отказе сервера возвращается содержимое кэша без ошибки.
func (s *Service) Fetch(ctx context.Context) ([]*domain.Booking, error) {
	remote, err := s.gateway.ListBookings(ctx)
	if err != nil {
		cached := s.cache.ReadAll()
		s.logger.Warn("Fetch: remote list failed, serving %d cached bookings: %v", len(cached), err)
		s.incFallback("fetch")
		s.set.replace(cached)
		return cached, nil
	}

	merged := mergeBookings(remote, s.cache.ReadAll())

	// Кэш сходится к серверной правде на каждом успешном чтении
	s.cache.WriteAll(merged)
	s.set.replace(merged)

	s.logger.Info("Fetch: merged %d server and local bookings", len(merged))
	return merged, nil
}

// Cancel отменяет бронирование по ID.
//
// Бронирование ищется в текущем наблюдаемом наборе; его отсутствие -
// единственная ошибка, которую видит вызывающий. Отмена всегда применяется
// локально, даже если серверное обновление не прошло.
func (s *Service) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	existing := s.findByID(bookingID)
	if existing == nil {
		s.logger.Warn("Cancel: booking id=%s not found", bookingID)
		return nil, ErrBookingNotFound
	}

	cancelled := existing.WithStatus(domain.StatusCancelled)

	updated, err := s.gateway.UpdateBooking(ctx, cancelled)
	if err != nil {
		s.logger.Warn("Cancel: remote update failed for id=%s, cancelling locally: %v", bookingID, err)
		s.incFallback("cancel")
		updated = cancelled
	} else {
		s.logger.Info("Cancel: booking id=%s cancelled on server", bookingID)
	}

	s.replaceByID(updated)

	return updated, nil
}

// Current возвращает текущий снимок наблюдаемого набора
func (s *Service) Current() []*domain.Booking {
	return s.set.Current()
}

// Subscribe регистрирует подписчика, синхронно получающего полный список
// при каждом изменении. Возвращает функцию отписки.
func (s *Service) Subscribe(fn func([]*domain.Booking)) func() {
	return s.set.subscribe(fn)
}

// ByRoomID возвращает бронирования указанной комнаты из текущего набора
func (s *Service) ByRoomID(roomID string) []*domain.Booking {
	var result []*domain.Booking
	for _, booking := range s.set.Current() {
		if booking.RoomID == roomID {
			result = append(result, booking)
		}
	}
	return result
}

// ByGuestName возвращает бронирования, чье имя гостя содержит подстроку
// (без учета регистра)
func (s *Service) ByGuestName(guestName string) []*domain.Booking {
	needle := strings.ToLower(guestName)
	var result []*domain.Booking
	for _, booking := range s.set.Current() {
		if strings.Contains(strings.ToLower(booking.GuestName), needle) {
			result = append(result, booking)
		}
	}
	return result
}

// ClearAll очищает наблюдаемый набор и кэш
func (s *Service) ClearAll() {
	s.set.replace([]*domain.Booking{})
	s.cache.WriteAll([]*domain.Booking{})
	s.logger.Info("ClearAll: bookings cleared")
}

// append добавляет бронирование в набор и кэш
func (s *Service) append(booking *domain.Booking) {
	current := s.set.Current()
	next := make([]*domain.Booking, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, booking)

	s.set.replace(next)
	s.cache.WriteAll(next)
}

// replaceByID заменяет запись с тем же ID в наборе и кэше
func (s *Service) replaceByID(booking *domain.Booking) {
	current := s.set.Current()
	next := make([]*domain.Booking, len(current))
	copy(next, current)

	for i, b := range next {
		if b.ID == booking.ID {
			next[i] = booking
			break
		}
	}

	s.set.replace(next)
	s.cache.WriteAll(next)
}

func (s *Service) findByID(bookingID string) *domain.Booking {
	for _, booking := range s.set.Current() {
		if booking.ID == bookingID {
			return booking
		}
	}
	return nil
}

func (s *Service) incFallback(operation string) {
	if s.metrics != nil {
		s.metrics.IncFallback(operation)
	}
}
