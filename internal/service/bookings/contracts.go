package bookings

import (
	"context"
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// Gateway интерфейс клиента удаленного API бронирований
type Gateway interface {
	CreateBooking(ctx context.Context, draft *domain.Booking) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Cache интерфейс локального хранилища списка бронирований
// ReadAll никогда не возвращает ошибку, WriteAll выполняется best-effort
type Cache interface {
	ReadAll() []*domain.Booking
	WriteAll(bookings []*domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsCollector интерфейс счетчика деградаций
// Может быть nil, если метрики выключены
type MetricsCollector interface {
	IncFallback(operation string)
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
