package rooms

import (
	"context"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// Gateway интерфейс клиента удаленного API комнат
type Gateway interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
