package dismiss_notification

type NotificationService interface {
	Dismiss(notificationID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
