package get_room

import "github.com/m04kA/HMS-BookingAgent/internal/domain"

// RoomResponse HTTP response model
type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
}

// FromDomainRoom конвертирует доменную комнату в HTTP response
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Type:        string(room.Type),
		Price:       room.Price,
		IsAvailable: room.IsAvailable,
		Description: room.Description,
		ImageURL:    room.ImageURL,
		Amenities:   room.Amenities,
		Capacity:    room.Capacity,
	}
}
