package get_rooms

import (
	"net/http"
	"strconv"

	"github.com/m04kA/HMS-BookingAgent/internal/api/handlers"
	"github.com/m04kA/HMS-BookingAgent/internal/domain"
	"github.com/m04kA/HMS-BookingAgent/pkg/ptr"
)

const (
	msgInvalidMinPrice = "некорректное значение minPrice"
	msgInvalidMaxPrice = "некорректное значение maxPrice"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
//
// Каталог комнат не деградирует в кеш: при недоступности удаленного API
// ошибка отдается клиенту.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.RoomsFilter{
		OnlyAvailable: r.URL.Query().Get("available") == "true",
		Search:        r.URL.Query().Get("search"),
	}

	if roomType := r.URL.Query().Get("type"); roomType != "" {
		filter.Type = ptr.Ptr(domain.RoomType(roomType))
	}

	if minPrice := r.URL.Query().Get("minPrice"); minPrice != "" {
		value, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid minPrice: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinPrice)
			return
		}
		filter.MinPrice = ptr.Ptr(value)
	}

	if maxPrice := r.URL.Query().Get("maxPrice"); maxPrice != "" {
		value, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid maxPrice: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMaxPrice)
			return
		}
		filter.MaxPrice = ptr.Ptr(value)
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainRooms(result))
}
