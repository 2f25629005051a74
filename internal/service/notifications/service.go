package notifications

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// Type тип уведомления (определяет оформление на стороне UI)
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Notification транзиентное уведомление пользователя
type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	Duration  time.Duration // 0 = не скрывать автоматически
	Timestamp time.Time
}

// DefaultDuration длительность показа уведомления по умолчанию
const DefaultDuration = domain.DefaultNotificationDurationMillis * time.Millisecond

// Service центр уведомлений.
//
// Держит не более domain.MaxVisibleNotifications записей, новые первыми.
// Автоскрытие - отменяемая отложенная задача, привязанная к ID уведомления:
// ручной Dismiss снимает таймер, таймер после срабатывания удаляет запись.
type Service struct {
	logger Logger

	mu      sync.Mutex
	current []*Notification
	timers  map[string]*time.Timer

	listeners  map[int]func([]*Notification)
	nextListen int
}

// NewService создает новый центр уведомлений
func NewService(logger Logger) *Service {
	return &Service{
		logger:    logger,
		timers:    make(map[string]*time.Timer),
		listeners: make(map[int]func([]*Notification)),
	}
}

// Success показывает уведомление об успехе
func (s *Service) Success(message, title string) *Notification {
	return s.Show(TypeSuccess, message, title, DefaultDuration)
}

// Error показывает уведомление об ошибке
func (s *Service) Error(message, title string) *Notification {
	return s.Show(TypeError, message, title, DefaultDuration)
}

// Warning показывает предупреждение
func (s *Service) Warning(message, title string) *Notification {
	return s.Show(TypeWarning, message, title, DefaultDuration)
}

// Info показывает информационное уведомление
func (s *Service) Info(message, title string) *Notification {
	return s.Show(TypeInfo, message, title, DefaultDuration)
}

// BookingConfirmed показывает уведомление об успешном бронировании
func (s *Service) BookingConfirmed(roomName, guestName string) *Notification {
	return s.Success(
		fmt.Sprintf("Room %s has been successfully booked for %s", roomName, guestName),
		"Booking Confirmed",
	)
}

// BookingFailed показывает уведомление об ошибке бронирования
func (s *Service) BookingFailed(message string) *Notification {
	if message == "" {
		message = "An error occurred while processing your booking. Please try again."
	}
	return s.Error(message, "Booking Failed")
}

// Show добавляет уведомление и планирует автоскрытие
// duration = 0 оставляет уведомление до ручного Dismiss
func (s *Service) Show(notificationType Type, message, title string, duration time.Duration) *Notification {
	notification := &Notification{
		ID:        uuid.NewString(),
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Duration:  duration,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	next := make([]*Notification, 0, len(s.current)+1)
	next = append(next, notification)
	next = append(next, s.current...)

	// Самые старые уведомления вытесняются сверх лимита
	if len(next) > domain.MaxVisibleNotifications {
		for _, evicted := range next[domain.MaxVisibleNotifications:] {
			s.stopTimerLocked(evicted.ID)
		}
		next = next[:domain.MaxVisibleNotifications]
	}
	s.current = next

	if duration > 0 {
		id := notification.ID
		s.timers[id] = time.AfterFunc(duration, func() {
			s.Dismiss(id)
		})
	}
	s.mu.Unlock()

	s.logger.Info("Show: %s notification id=%s duration=%s", notificationType, notification.ID, duration)

	s.notify()
	return notification
}

// Dismiss убирает уведомление по ID и снимает его таймер
func (s *Service) Dismiss(notificationID string) {
	s.mu.Lock()
	s.stopTimerLocked(notificationID)

	next := make([]*Notification, 0, len(s.current))
	removed := false
	for _, notification := range s.current {
		if notification.ID == notificationID {
			removed = true
			continue
		}
		next = append(next, notification)
	}
	s.current = next
	s.mu.Unlock()

	if removed {
		s.notify()
	}
}

// DismissAll убирает все уведомления
func (s *Service) DismissAll() {
	s.mu.Lock()
	for id := range s.timers {
		s.stopTimerLocked(id)
	}
	s.current = nil
	s.mu.Unlock()

	s.logger.Info("DismissAll: notifications cleared")
	s.notify()
}

// Current возвращает текущий список уведомлений, новые первыми
func (s *Service) Current() []*Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe регистрирует подписчика, получающего полный список при каждом
// изменении. Возвращает функцию отписки.
func (s *Service) Subscribe(fn func([]*Notification)) func() {
	s.mu.Lock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) stopTimerLocked(notificationID string) {
	if timer, ok := s.timers[notificationID]; ok {
		timer.Stop()
		delete(s.timers, notificationID)
	}
}

func (s *Service) notify() {
	s.mu.Lock()
	snapshot := s.current
	listeners := make([]func([]*Notification), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
