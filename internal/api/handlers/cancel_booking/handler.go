package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-BookingAgent/internal/api/handlers"
	"github.com/m04kA/HMS-BookingAgent/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	rooms   RoomCatalog
	logger  Logger
}

func NewHandler(service BookingService, rooms RoomCatalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		rooms:   rooms,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Отменяем бронирование: локальная отмена выполняется всегда,
	// наружу выходит только "не найдено"
	cancelled, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Освобождаем комнату (best-effort: неудача не отменяет результат)
	if _, err := h.rooms.SetAvailability(r.Context(), cancelled.RoomID, true); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Failed to release room room_id=%s: %v",
			cancelled.RoomID, err)
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(cancelled))
}
