package get_bookings

import (
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"roomId"`
	RoomName       string  `json:"roomName"`
	RoomType       string  `json:"roomType"`
	GuestName      string  `json:"guestName"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`
	NumberOfNights int     `json:"numberOfNights"`
	TotalPrice     float64 `json:"totalPrice"`
	BookingDate    string  `json:"bookingDate"`
	Status         string  `json:"status"`
}

// FromDomainBookings конвертирует доменные бронирования в HTTP response
func FromDomainBookings(list []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, &BookingResponse{
			ID:             b.ID,
			RoomID:         b.RoomID,
			RoomName:       b.RoomName,
			RoomType:       string(b.RoomType),
			GuestName:      b.GuestName,
			CheckInDate:    b.CheckInDate.Format(domain.DateFormat),
			CheckOutDate:   b.CheckOutDate.Format(domain.DateFormat),
			NumberOfNights: b.NumberOfNights,
			TotalPrice:     b.TotalPrice,
			BookingDate:    b.BookingDate.Format(time.RFC3339),
			Status:         string(b.Status),
		})
	}
	return result
}
