package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

// Client клиент удаленного API комнат и бронирований.
// Любая ошибка транспорта или не-2xx ответ на операциях с бронированиями
// сворачивается в ErrRemoteUnavailable: вызывающий слой не различает
// причины недоступности, только сам факт (fallback-политика движка).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsCollector
}

// NewClient создает новый экземпляр клиента удаленного API
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsCollector) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// CreateBooking создает бронирование на сервере
// Отправляет черновик без ID; сервер назначает ID и возвращает полную запись
func (c *Client) CreateBooking(ctx context.Context, draft *domain.Booking) (*domain.Booking, error) {
	var record bookingRecord
	err := c.do(ctx, "create_booking", http.MethodPost, c.baseURL+"/bookings", toBookingPayload(draft), &record)
	if err != nil {
		return nil, err
	}
	return record.toDomain()
}

// ListBookings получает все бронирования с сервера
func (c *Client) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	var records []bookingRecord
	err := c.do(ctx, "list_bookings", http.MethodGet, c.baseURL+"/bookings", nil, &records)
	if err != nil {
		return nil, err
	}
	return toDomainBookings(records)
}

// UpdateBooking обновляет бронирование на сервере
// API требует замены всего объекта, частичный patch не поддерживается
func (c *Client) UpdateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var record bookingRecord
	url := fmt.Sprintf("%s/bookings/%s", c.baseURL, booking.ID)
	err := c.do(ctx, "update_booking", http.MethodPut, url, toBookingPayload(booking), &record)
	if err != nil {
		return nil, err
	}
	return record.toDomain()
}

// ListRooms получает каталог комнат с сервера
func (c *Client) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	var records []roomRecord
	err := c.do(ctx, "list_rooms", http.MethodGet, c.baseURL+"/rooms", nil, &records)
	if err != nil {
		return nil, err
	}
	return toDomainRooms(records), nil
}

// GetRoom получает комнату по ID
func (c *Client) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	var record roomRecord
	url := fmt.Sprintf("%s/rooms/%s", c.baseURL, roomID)
	err := c.do(ctx, "get_room", http.MethodGet, url, nil, &record)
	if err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// UpdateRoom обновляет комнату на сервере (замена всего объекта)
// Используется для смены флага доступности после бронирования или отмены
func (c *Client) UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	var record roomRecord
	url := fmt.Sprintf("%s/rooms/%s", c.baseURL, room.ID)
	err := c.do(ctx, "update_room", http.MethodPut, url, toRoomPayload(room), &record)
	if err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// do выполняет HTTP запрос и декодирует ответ в out
func (c *Client) do(ctx context.Context, operation, method, url string, body interface{}, out interface{}) error {
	start := time.Now()
	err := c.doRequest(ctx, method, url, body, out)
	c.observe(operation, err, time.Since(start))
	return err
}

func (c *Client) doRequest(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrRemoteUnavailable, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) observe(operation string, err error, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveGatewayCall(operation, outcome, duration)
}
