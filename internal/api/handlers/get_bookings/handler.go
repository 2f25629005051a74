package get_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/HMS-BookingAgent/internal/api/handlers"
	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
//
// Всегда отвечает 200: при недоступности удаленного API движок отдает
// кешированный список, ошибка наружу не выходит.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Fetch(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to fetch bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Опциональные фильтры из query параметров
	roomID := r.URL.Query().Get("roomId")
	guest := r.URL.Query().Get("guest")
	result = filterBookings(result, roomID, guest)

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBookings(result))
}

func filterBookings(list []*domain.Booking, roomID, guest string) []*domain.Booking {
	if roomID == "" && guest == "" {
		return list
	}
	filtered := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		if roomID != "" && b.RoomID != roomID {
			continue
		}
		if guest != "" && !strings.Contains(strings.ToLower(b.GuestName), strings.ToLower(guest)) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}
