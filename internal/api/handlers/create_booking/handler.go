package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-BookingAgent/internal/api/handlers"
	createBooking "github.com/m04kA/HMS-BookingAgent/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptyGuestName     = "имя гостя не может быть пустым"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgCheckInInPast      = "дата заезда не может быть в прошлом"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната недоступна для бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEmptyGuestName):
			h.logger.Warn("POST /bookings - Empty guest name: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgEmptyGuestName)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrCheckInInPast):
			h.logger.Warn("POST /bookings - Check-in in the past: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%s", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s",
		result.ID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
