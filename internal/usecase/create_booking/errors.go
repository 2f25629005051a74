package create_booking

import "errors"

var (
	// ErrEmptyGuestName возвращается при пустом имени гостя
	ErrEmptyGuestName = errors.New("create_booking: guest name is empty")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrCheckInInPast возвращается, когда дата заезда в прошлом
	ErrCheckInInPast = errors.New("create_booking: check-in date is in the past")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда комната занята
	ErrRoomUnavailable = errors.New("create_booking: room is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
