package cancel_booking

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

// FromDomainBooking конвертирует доменное бронирование в HTTP response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
	}
}
