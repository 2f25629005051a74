package get_notifications

import (
	"net/http"

	"github.com/m04kA/HMS-BookingAgent/internal/api/handlers"
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

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Current()

	h.logger.Info("GET /notifications - Notifications retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromNotifications(result))
}
