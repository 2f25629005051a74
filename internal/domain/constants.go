package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, calendar dates without time of day
)

// Cache constants
const (
	// BookingsStorageKey единственный зарезервированный ключ локального
	// хранилища, под которым лежит JSON-массив бронирований
	BookingsStorageKey = "hotel_bookings"
)

// Notification defaults
const (
	DefaultNotificationDurationMillis = 3000
	MaxVisibleNotifications           = 5
)

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPending,
	StatusCancelled,
}
