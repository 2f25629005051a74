package get_bookings

import (
	"context"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

type BookingService interface {
	Fetch(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
