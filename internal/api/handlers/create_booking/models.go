package create_booking

import (
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
	createBooking "github.com/m04kA/HMS-BookingAgent/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       string `json:"roomId"`
	GuestName    string `json:"guestName"`
	CheckInDate  string `json:"checkInDate"`  // "2026-09-01"
	CheckOutDate string `json:"checkOutDate"` // "2026-09-04"
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:       r.RoomID,
		GuestName:    r.GuestName,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		RoomID:         resp.RoomID,
		RoomName:       resp.RoomName,
		RoomType:       resp.RoomType,
		GuestName:      resp.GuestName,
		CheckInDate:    resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:   resp.CheckOutDate.Format(domain.DateFormat),
		NumberOfNights: resp.NumberOfNights,
		TotalPrice:     resp.TotalPrice,
		BookingDate:    resp.BookingDate.Format(time.RFC3339),
		Status:         resp.Status,
	}
}
