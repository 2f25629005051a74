package dismiss_notification

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-BookingAgent/internal/api/handlers"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/notifications/{notificationId}
//
// Повторное закрытие уже исчезнувшего уведомления не ошибка: ответ 204
// в любом случае.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем notificationId из URL
	vars := mux.Vars(r)
	notificationID := vars["notificationId"]

	if notificationID == "" {
		h.logger.Warn("DELETE /notifications/{id} - Empty notification ID")
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	h.service.Dismiss(notificationID)

	h.logger.Info("DELETE /notifications/{id} - Notification dismissed: notification_id=%s", notificationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
