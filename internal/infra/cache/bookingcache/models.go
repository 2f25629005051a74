package bookingcache

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// bookingRecord формат записи в хранилище
// Совпадает с wire форматом удаленного API: даты как YYYY-MM-DD,
// bookingDate как ISO 8601
type bookingRecord struct {
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

func toRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
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

func (r bookingRecord) toDomain() (*domain.Booking, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkInDate %q: %w", r.CheckInDate, err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkOutDate %q: %w", r.CheckOutDate, err)
	}

	bookingDate, err := time.Parse(time.RFC3339, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid bookingDate %q: %w", r.BookingDate, err)
	}

	return &domain.Booking{
		ID:             r.ID,
		RoomID:         r.RoomID,
		RoomName:       r.RoomName,
		RoomType:       domain.RoomType(r.RoomType),
		GuestName:      r.GuestName,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfNights: r.NumberOfNights,
		TotalPrice:     r.TotalPrice,
		BookingDate:    bookingDate,
		Status:         domain.BookingStatus(r.Status),
	}, nil
}

func toDomainBookings(records []bookingRecord) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(records))
	for _, record := range records {
		booking, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
