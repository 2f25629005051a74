package get_rooms

import (
	"context"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

type RoomService interface {
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
