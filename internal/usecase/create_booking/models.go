package create_booking

import (
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID       string    // ID комнаты
	GuestName    string    // Имя гостя
	CheckInDate  time.Time // Дата заезда (без времени)
	CheckOutDate time.Time // Дата выезда (без времени)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string    // ID бронирования (серверный или локальный)
	RoomID         string    // ID комнаты
	RoomName       string    // Название комнаты на момент бронирования
	RoomType       string    // Тип комнаты на момент бронирования
	GuestName      string    // Имя гостя
	CheckInDate    time.Time // Дата заезда
	CheckOutDate   time.Time // Дата выезда
	NumberOfNights int       // Количество ночей
	TotalPrice     float64   // Итоговая стоимость
	BookingDate    time.Time // Время создания бронирования
	Status         string    // Статус бронирования
}

func (r *Request) toFormData() domain.BookingFormData {
	return domain.BookingFormData{
		GuestName:    r.GuestName,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
	}
}

func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		RoomID:         b.RoomID,
		RoomName:       b.RoomName,
		RoomType:       string(b.RoomType),
		GuestName:      b.GuestName,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		NumberOfNights: b.NumberOfNights,
		TotalPrice:     b.TotalPrice,
		BookingDate:    b.BookingDate,
		Status:         string(b.Status),
	}
}
