package get_room

import (
	"context"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

type RoomService interface {
	GetByID(ctx context.Context, roomID string) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
