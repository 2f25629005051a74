package get_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

type fakeService struct {
	bookings []*domain.Booking
}

func (f *fakeService) Fetch(_ context.Context) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBookings() []*domain.Booking {
	checkIn := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)
	return []*domain.Booking{
		{ID: "1", RoomID: "101", GuestName: "Alice Johnson", CheckInDate: checkIn, CheckOutDate: checkOut, Status: domain.StatusConfirmed},
		{ID: "2", RoomID: "102", GuestName: "Bob Smith", CheckInDate: checkIn, CheckOutDate: checkOut, Status: domain.StatusConfirmed},
		{ID: "local_1765380600000_a1b2c3d", RoomID: "101", GuestName: "Carol White", CheckInDate: checkIn, CheckOutDate: checkOut, Status: domain.StatusConfirmed},
	}
}

func doRequest(t *testing.T, service *fakeService, query string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+query, nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []*BookingResponse {
	t.Helper()

	var resp []*BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandle_All(t *testing.T) {
	rec := doRequest(t, &fakeService{bookings: testBookings()}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeList(t, rec)
	require.Len(t, resp, 3)
	assert.Equal(t, "1", resp[0].ID)
	assert.Equal(t, "2026-09-01", resp[0].CheckInDate)
}

func TestHandle_FilterByRoom(t *testing.T) {
	rec := doRequest(t, &fakeService{bookings: testBookings()}, "?roomId=101")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeList(t, rec)
	require.Len(t, resp, 2)
	assert.Equal(t, "1", resp[0].ID)
	assert.Equal(t, "local_1765380600000_a1b2c3d", resp[1].ID)
}

func TestHandle_FilterByGuest(t *testing.T) {
	rec := doRequest(t, &fakeService{bookings: testBookings()}, "?guest=bob")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeList(t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "2", resp[0].ID)
}

func TestHandle_CombinedFilters(t *testing.T) {
	rec := doRequest(t, &fakeService{bookings: testBookings()}, "?roomId=101&guest=carol")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeList(t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "Carol White", resp[0].GuestName)
}

func TestHandle_EmptyList(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
