package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается при отмене бронирования,
	// отсутствующего в текущем наборе
	ErrBookingNotFound = errors.New("bookings: booking not found")
)
