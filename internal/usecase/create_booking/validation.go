package create_booking

import (
	"strings"
	"time"
)

// validateRequest проверяет пользовательский ввод формы бронирования.
// Движок бронирований ниже по стеку этим проверкам доверяет.
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return ErrEmptyGuestName
	}

	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return ErrInvalidDateRange
	}

	// Выезд строго после заезда
	if !req.CheckOutDate.After(req.CheckInDate) {
		return ErrInvalidDateRange
	}

	// Заезд не раньше сегодняшнего дня
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.CheckInDate.Before(today) {
		return ErrCheckInInPast
	}

	return nil
}
