package remoteapi

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// bookingRecord wire модель бронирования
type bookingRecord struct {
	ID             string  `json:"id,omitempty"`
	RoomID         string  `json:"roomId"`
	RoomName       string  `json:"roomName"`
	RoomType       string  `json:"roomType"`
	GuestName      string  `json:"guestName"`
	CheckInDate    string  `json:"checkInDate"`  // "2025-12-10"
	CheckOutDate   string  `json:"checkOutDate"` // "2025-12-13"
	NumberOfNights int     `json:"numberOfNights"`
	TotalPrice     float64 `json:"totalPrice"`
	BookingDate    string  `json:"bookingDate"` // ISO 8601
	Status         string  `json:"status"`
}

// roomRecord wire модель комнаты
type roomRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
}

// toBookingPayload конвертирует domain модель в wire модель
// Для черновиков ID пустой и не сериализуется - его назначит сервер
func toBookingPayload(b *domain.Booking) bookingRecord {
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

// toDomain конвертирует wire модель в domain модель
func (r bookingRecord) toDomain() (*domain.Booking, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkInDate %q: %v", ErrInvalidResponse, r.CheckInDate, err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkOutDate %q: %v", ErrInvalidResponse, r.CheckOutDate, err)
	}

	bookingDate, err := time.Parse(time.RFC3339, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid bookingDate %q: %v", ErrInvalidResponse, r.BookingDate, err)
	}

	if !domain.IsValidStatus(domain.BookingStatus(r.Status)) {
		return nil, fmt.Errorf("%w: unknown booking status %q", ErrInvalidResponse, r.Status)
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

// toRoomPayload конвертирует domain модель комнаты в wire модель
func toRoomPayload(r *domain.Room) roomRecord {
	return roomRecord{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Amenities:   r.Amenities,
		Capacity:    r.Capacity,
	}
}

func toDomainRooms(records []roomRecord) []*domain.Room {
	rooms := make([]*domain.Room, 0, len(records))
	for _, record := range records {
		rooms = append(rooms, record.toDomain())
	}
	return rooms
}

// toDomain конвертирует wire модель комнаты в domain модель
func (r roomRecord) toDomain() *domain.Room {
	return &domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		Type:        domain.RoomType(r.Type),
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Amenities:   r.Amenities,
		Capacity:    r.Capacity,
	}
}
