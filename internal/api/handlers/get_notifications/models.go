package get_notifications

import (
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/service/notifications"
)

// NotificationResponse HTTP response model
type NotificationResponse struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Title          string `json:"title,omitempty"`
	Message        string `json:"message"`
	DurationMillis int64  `json:"durationMillis"`
	Timestamp      string `json:"timestamp"`
}

// FromNotifications конвертирует уведомления в HTTP response
func FromNotifications(list []*notifications.Notification) []*NotificationResponse {
	result := make([]*NotificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, &NotificationResponse{
			ID:             n.ID,
			Type:           string(n.Type),
			Title:          n.Title,
			Message:        n.Message,
			DurationMillis: n.Duration.Milliseconds(),
			Timestamp:      n.Timestamp.Format(time.RFC3339),
		})
	}
	return result
}
