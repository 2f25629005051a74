package get_notifications

import (
	"github.com/m04kA/HMS-BookingAgent/internal/service/notifications"
)

type NotificationService interface {
	Current() []*notifications.Notification
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
