package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/HMS-BookingAgent/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:             "42",
			RoomID:         "101",
			RoomName:       "Ocean View Suite",
			RoomType:       "Suite",
			GuestName:      "Alice Johnson",
			CheckInDate:    time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate:   time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
			NumberOfNights: 3,
			TotalPrice:     750,
			BookingDate:    time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC),
			Status:         "confirmed",
		},
	}

	rec := doRequest(t, uc, `{
		"roomId": "101",
		"guestName": "Alice Johnson",
		"checkInDate": "2026-09-01",
		"checkOutDate": "2026-09-04"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.ID)
	assert.Equal(t, "2026-09-01", resp.CheckInDate)
	assert.Equal(t, "2026-09-04", resp.CheckOutDate)
	assert.Equal(t, 3, resp.NumberOfNights)
	assert.Equal(t, 750.0, resp.TotalPrice)

	// Даты распарсены в use case модель
	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), uc.got.CheckInDate)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{
		"roomId": "101",
		"guestName": "Alice",
		"checkInDate": "01.09.2026",
		"checkOutDate": "2026-09-04"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty guest name", createBooking.ErrEmptyGuestName, http.StatusBadRequest},
		{"invalid date range", createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"check-in in past", createBooking.ErrCheckInInPast, http.StatusBadRequest},
		{"room not found", createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"room unavailable", createBooking.ErrRoomUnavailable, http.StatusConflict},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, `{
				"roomId": "101",
				"guestName": "Alice",
				"checkInDate": "2026-09-01",
				"checkOutDate": "2026-09-04"
			}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
