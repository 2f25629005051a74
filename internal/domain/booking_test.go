package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNumberOfNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  date(2025, 12, 10),
			checkOut: date(2025, 12, 13),
			want:     3,
		},
		{
			name:     "one night",
			checkIn:  date(2025, 12, 10),
			checkOut: date(2025, 12, 11),
			want:     1,
		},
		{
			name:     "same day",
			checkIn:  date(2025, 12, 10),
			checkOut: date(2025, 12, 10),
			want:     0,
		},
		{
			name:     "inverted range yields positive count",
			checkIn:  date(2025, 12, 13),
			checkOut: date(2025, 12, 10),
			want:     3,
		},
		{
			name:     "across month boundary",
			checkIn:  date(2025, 11, 29),
			checkOut: date(2025, 12, 2),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberOfNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, TotalPrice(100, 3))
	assert.Equal(t, 0.0, TotalPrice(100, 0))
	assert.Equal(t, 149.5, TotalPrice(149.5, 1))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}

func TestBooking_IsLocalOnly(t *testing.T) {
	local := &Booking{ID: "local_1765380600000_ab12cd3"}
	server := &Booking{ID: "42"}

	assert.True(t, local.IsLocalOnly())
	assert.False(t, server.IsLocalOnly())
}

func TestBooking_WithStatus(t *testing.T) {
	original := &Booking{
		ID:        "42",
		GuestName: "John Doe",
		Status:    StatusConfirmed,
	}

	cancelled := original.WithStatus(StatusCancelled)

	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, original.ID, cancelled.ID)
	assert.Equal(t, original.GuestName, cancelled.GuestName)
	// Исходная запись не изменяется
	assert.Equal(t, StatusConfirmed, original.Status)
}

func TestRoomsFilter_Matches(t *testing.T) {
	room := &Room{
		ID:          "1",
		Name:        "Room 101",
		Type:        RoomTypeDouble,
		Price:       120,
		IsAvailable: true,
	}

	double := RoomTypeDouble
	suite := RoomTypeSuite
	min := 100.0
	max := 110.0

	assert.True(t, RoomsFilter{}.Matches(room))
	assert.True(t, RoomsFilter{Type: &double}.Matches(room))
	assert.False(t, RoomsFilter{Type: &suite}.Matches(room))
	assert.True(t, RoomsFilter{MinPrice: &min}.Matches(room))
	assert.False(t, RoomsFilter{MaxPrice: &max}.Matches(room))
	assert.True(t, RoomsFilter{Search: "101"}.Matches(room))
	assert.True(t, RoomsFilter{Search: "ROOM"}.Matches(room))
	assert.False(t, RoomsFilter{Search: "202"}.Matches(room))

	room.IsAvailable = false
	assert.False(t, RoomsFilter{OnlyAvailable: true}.Matches(room))
}
