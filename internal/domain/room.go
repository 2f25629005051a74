package domain

import "strings"

// RoomType represents the category of a hotel room
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
	RoomTypeDeluxe RoomType = "Deluxe"
	RoomTypeFamily RoomType = "Family"
)

// AllRoomTypes lists every known room type
var AllRoomTypes = []RoomType{
	RoomTypeSingle,
	RoomTypeDouble,
	RoomTypeSuite,
	RoomTypeDeluxe,
	RoomTypeFamily,
}

// Room represents a hotel room as served by the remote API
type Room struct {
	ID          string
	Name        string
	Type        RoomType
	Price       float64
	IsAvailable bool
	Description string
	ImageURL    string
	Amenities   []string
	Capacity    int
}

// RoomsFilter фильтр для выборки комнат из каталога
type RoomsFilter struct {
	Type          *RoomType // Фильтр по типу (nil - все типы)
	MinPrice      *float64  // Нижняя граница цены за ночь (опционально)
	MaxPrice      *float64  // Верхняя граница цены за ночь (опционально)
	OnlyAvailable bool      // Только свободные комнаты
	Search        string    // Подстрока для поиска по названию (без учета регистра)
}

// Matches reports whether the room passes the filter
func (f RoomsFilter) Matches(room *Room) bool {
	if f.Type != nil && room.Type != *f.Type {
		return false
	}
	if f.MinPrice != nil && room.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && room.Price > *f.MaxPrice {
		return false
	}
	if f.OnlyAvailable && !room.IsAvailable {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(room.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}
