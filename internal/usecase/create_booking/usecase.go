package create_booking

import (
	"context"
	"errors"
	"fmt"

	roomsService "github.com/m04kA/HMS-BookingAgent/internal/service/rooms"
)

// UseCase use case создания бронирования.
//
// Вся валидация пользовательского ввода живет здесь: движок бронирований
// доверяет данным и не перепроверяет порядок дат. Дальше валидации -
// получение комнаты, создание бронирования, best-effort смена доступности
// комнаты и уведомление пользователя.
type UseCase struct {
	bookings     BookingCreator
	rooms        RoomCatalog
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingCreator,
	rooms RoomCatalog,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:     bookings,
		rooms:        rooms,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s guest=%s checkIn=%s checkOut=%s",
		req.RoomID, req.GuestName,
		req.CheckInDate.Format("2006-01-02"), req.CheckOutDate.Format("2006-01-02"))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Комната должна быть свободна
	if !room.IsAvailable {
		uc.logger.Warn("CreateBooking: room id=%s is not available", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	// 4. Создаем бронирование (движок сам переживает отказ удаленного API)
	booking, err := uc.bookings.Create(ctx, room, req.toFormData())
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 5. Помечаем комнату занятой (best-effort: неудача не отменяет бронирование)
	if _, err := uc.rooms.SetAvailability(ctx, room.ID, false); err != nil {
		uc.logger.Warn("CreateBooking: failed to mark room id=%s unavailable: %v", room.ID, err)
	}

	// 6. Уведомляем пользователя
	uc.notifier.BookingConfirmed(room.Name, booking.GuestName)

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)
	return fromDomainBooking(booking), nil
}
