package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
	"github.com/m04kA/HMS-BookingAgent/internal/service/notifications"
)

// BookingCreator интерфейс движка бронирований
type BookingCreator interface {
	Create(ctx context.Context, room *domain.Room, form domain.BookingFormData) (*domain.Booking, error)
}

// RoomCatalog интерфейс каталога комнат
type RoomCatalog interface {
	GetByID(ctx context.Context, roomID string) (*domain.Room, error)
	SetAvailability(ctx context.Context, roomID string, isAvailable bool) (*domain.Room, error)
}

// Notifier интерфейс центра уведомлений
type Notifier interface {
	BookingConfirmed(roomName, guestName string) *notifications.Notification
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
