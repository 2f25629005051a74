package cancel_booking

import (
	"context"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
}

type RoomCatalog interface {
	SetAvailability(ctx context.Context, roomID string, isAvailable bool) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
