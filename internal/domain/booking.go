package domain

import (
	"math"
	"time"

	"github.com/m04kA/HMS-BookingAgent/pkg/localid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a hotel room reservation.
// IDs live in two disjoint namespaces: server-assigned (opaque) and
// client-generated with the localid prefix, created while the remote
// API was unreachable.
type Booking struct {
	ID string

	// Denormalized room snapshot taken at booking time.
	// Later room changes do not rewrite history.
	RoomID   string
	RoomName string
	RoomType RoomType

	GuestName    string
	CheckInDate  time.Time
	CheckOutDate time.Time

	NumberOfNights int
	TotalPrice     float64

	BookingDate time.Time
	Status      BookingStatus
}

// IsValidStatus reports whether the status is one of the known booking statuses
func IsValidStatus(status BookingStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsLocalOnly returns true if the booking was created offline and has not
// been acknowledged by the server yet
func (b *Booking) IsLocalOnly() bool {
	return localid.IsLocal(b.ID)
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// WithStatus returns a copy of the booking with the given status.
// Every other field is immutable after creation.
func (b *Booking) WithStatus(status BookingStatus) *Booking {
	updated := *b
	updated.Status = status
	return &updated
}

// NumberOfNights computes the stay length as the ceiling of the absolute
// difference between the two dates in whole days. The absolute value keeps
// the result non-negative for inverted ranges; rejecting inverted ranges is
// the caller's job, not this layer's.
func NumberOfNights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// TotalPrice computes the stay price from the nightly rate
func TotalPrice(pricePerNight float64, numberOfNights int) float64 {
	return pricePerNight * float64(numberOfNights)
}

// BookingFormData user-supplied form input for a new booking.
// Validated by the create_booking usecase before it reaches the engine.
type BookingFormData struct {
	GuestName    string
	CheckInDate  time.Time
	CheckOutDate time.Time
}
