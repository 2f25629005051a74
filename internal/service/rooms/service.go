package rooms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
	"github.com/m04kA/HMS-BookingAgent/internal/integrations/remoteapi"
)

// Service каталог комнат.
//
// В отличие от движка бронирований у каталога нет fallback-политики:
// ошибки удаленного API поднимаются вызывающему. Недоступный каталог -
// видимое состояние UI, а не потеря пользовательских данных.
type Service struct {
	gateway Gateway
	logger  Logger

	mu      sync.Mutex
	current []*domain.Room
}

// NewService создает новый экземпляр каталога комнат
func NewService(gateway Gateway, logger Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// List получает каталог комнат с сервера и применяет фильтр в памяти
func (s *Service) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	all, err := s.gateway.ListRooms(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch rooms: %v", err)
		return nil, fmt.Errorf("%w: List - gateway error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.current = all
	s.mu.Unlock()

	filtered := make([]*domain.Room, 0, len(all))
	for _, room := range all {
		if filter.Matches(room) {
			filtered = append(filtered, room)
		}
	}

	s.logger.Info("List: fetched %d rooms, %d after filtering", len(all), len(filtered))
	return filtered, nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.gateway.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, remoteapi.ErrNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: failed to fetch room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetByID - gateway error: %v", ErrInternal, err)
	}
	return room, nil
}

// SetAvailability меняет флаг доступности комнаты после бронирования
// или отмены. API требует замены всего объекта, поэтому комната сначала
// берется из текущего снимка, а при его отсутствии - с сервера.
func (s *Service) SetAvailability(ctx context.Context, roomID string, isAvailable bool) (*domain.Room, error) {
	room := s.findCurrent(roomID)
	if room == nil {
		fetched, err := s.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		room = fetched
	}

	update := *room
	update.IsAvailable = isAvailable

	updated, err := s.gateway.UpdateRoom(ctx, &update)
	if err != nil {
		if errors.Is(err, remoteapi.ErrNotFound) {
			s.logger.Warn("SetAvailability: room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("SetAvailability: failed to update room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: SetAvailability - gateway error: %v", ErrInternal, err)
	}

	s.replaceCurrent(updated)

	s.logger.Info("SetAvailability: room id=%s available=%t", roomID, isAvailable)
	return updated, nil
}

// Current возвращает последний загруженный снимок каталога
func (s *Service) Current() []*domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// UniqueTypes возвращает типы комнат, встречающиеся в текущем снимке
func (s *Service) UniqueTypes() []domain.RoomType {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[domain.RoomType]struct{})
	var types []domain.RoomType
	for _, room := range s.current {
		if _, ok := seen[room.Type]; ok {
			continue
		}
		seen[room.Type] = struct{}{}
		types = append(types, room.Type)
	}
	return types
}

func (s *Service) findCurrent(roomID string) *domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.current {
		if room.ID == roomID {
			return room
		}
	}
	return nil
}

func (s *Service) replaceCurrent(room *domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]*domain.Room, len(s.current))
	copy(next, s.current)
	for i, r := range next {
		if r.ID == room.ID {
			next[i] = room
			break
		}
	}
	s.current = next
}
