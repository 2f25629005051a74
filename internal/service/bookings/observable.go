package bookings

import (
	"sync"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// bookingSet наблюдаемый набор бронирований: текущий снимок списка плюс
// зарегистрированные подписчики, синхронно вызываемые при каждой замене.
//
// Все мутации - замена значения целиком (copy-on-write), поэтому подписчики
// никогда не видят частично обновленный список. Экземпляр создается на
// сессию движка и передается по ссылке, глобального состояния нет.
type bookingSet struct {
	mu        sync.Mutex
	current   []*domain.Booking
	listeners map[int]func([]*domain.Booking)
	nextID    int
}

func newBookingSet(initial []*domain.Booking) *bookingSet {
	return &bookingSet{
		current:   initial,
		listeners: make(map[int]func([]*domain.Booking)),
	}
}

// Current возвращает текущий снимок
// Снимок никогда не мутируется после публикации
func (s *bookingSet) Current() []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// replace заменяет снимок и синхронно уведомляет подписчиков
func (s *bookingSet) replace(bookings []*domain.Booking) {
	s.mu.Lock()
	s.current = bookings
	listeners := make([]func([]*domain.Booking), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	// Вызов вне блокировки: подписчик может читать Current
	for _, fn := range listeners {
		fn(bookings)
	}
}

// subscribe регистрирует подписчика и возвращает функцию отписки
func (s *bookingSet) subscribe(fn func([]*domain.Booking)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
