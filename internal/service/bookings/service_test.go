package bookings

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-BookingAgent/internal/domain"
)

var errGatewayDown = errors.New("gateway down")

// fakeGateway управляемый фейк удаленного API
type fakeGateway struct {
	failCreate bool
	failList   bool
	failUpdate bool

	serverList []*domain.Booking
	nextID     int

	createdDrafts []*domain.Booking
	updated       []*domain.Booking
}

func (g *fakeGateway) CreateBooking(_ context.Context, draft *domain.Booking) (*domain.Booking, error) {
	g.createdDrafts = append(g.createdDrafts, draft)
	if g.failCreate {
		return nil, errGatewayDown
	}
	g.nextID++
	created := *draft
	created.ID = strconv.Itoa(g.nextID)
	return &created, nil
}

func (g *fakeGateway) ListBookings(_ context.Context) ([]*domain.Booking, error) {
	if g.failList {
		return nil, errGatewayDown
	}
	return g.serverList, nil
}

func (g *fakeGateway) UpdateBooking(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	g.updated = append(g.updated, booking)
	if g.failUpdate {
		return nil, errGatewayDown
	}
	return booking, nil
}

// fakeCache кэш в памяти с контрактом настоящего хранилища
type fakeCache struct {
	stored []*domain.Booking
	writes int
}

func (c *fakeCache) ReadAll() []*domain.Booking {
	if c.stored == nil {
		return []*domain.Booking{}
	}
	return c.stored
}

func (c *fakeCache) WriteAll(bookings []*domain.Booking) {
	c.stored = bookings
	c.writes++
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct {
	fallbacks map[string]int
}

func (m *fakeMetrics) IncFallback(operation string) {
	if m.fallbacks == nil {
		m.fallbacks = make(map[string]int)
	}
	m.fallbacks[operation]++
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(gateway *fakeGateway, cache *fakeCache) (*Service, *fakeMetrics) {
	metrics := &fakeMetrics{}
	svc := NewService(gateway, cache, metrics, nopLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)}
	return svc, metrics
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:          "7",
		Name:        "Room 101",
		Type:        domain.RoomTypeDouble,
		Price:       100,
		IsAvailable: true,
	}
}

func testForm() domain.BookingFormData {
	return domain.BookingFormData{
		GuestName:    "John Doe",
		CheckInDate:  time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{}
	svc, metrics := newTestService(gateway, cache)

	booking, err := svc.Create(context.Background(), testRoom(), testForm())
	require.NoError(t, err)

	// Сервер назначил ID
	assert.False(t, booking.IsLocalOnly())
	assert.Equal(t, 3, booking.NumberOfNights)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, "Room 101", booking.RoomName)

	// Черновик ушел на сервер без ID
	require.Len(t, gateway.createdDrafts, 1)
	assert.Empty(t, gateway.createdDrafts[0].ID)

	// Запись попала в набор и кэш
	require.Len(t, svc.Current(), 1)
	require.Len(t, cache.ReadAll(), 1)
	assert.Empty(t, metrics.fallbacks)
}

func TestCreate_FallbackOnGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{failCreate: true}
	cache := &fakeCache{}
	svc, metrics := newTestService(gateway, cache)

	booking, err := svc.Create(context.Background(), testRoom(), testForm())

	// Отказ сети не доходит до вызывающего
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(booking.ID, "local_"))
	assert.Equal(t, domain.StatusConfirmed, booking.Status)

	// Бронирование сохранено в кэше
	cached := cache.ReadAll()
	require.Len(t, cached, 1)
	assert.Equal(t, booking.ID, cached[0].ID)

	assert.Equal(t, 1, metrics.fallbacks["create"])
}

func TestCreate_ZeroNights(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{}
	svc, _ := newTestService(gateway, cache)

	form := testForm()
	form.CheckOutDate = form.CheckInDate

	booking, err := svc.Create(context.Background(), testRoom(), form)
	require.NoError(t, err)
	assert.Equal(t, 0, booking.NumberOfNights)
	assert.Equal(t, 0.0, booking.TotalPrice)
}

func TestCreate_BookingDateFromClock(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{}
	svc, _ := newTestService(gateway, cache)

	booking, err := svc.Create(context.Background(), testRoom(), testForm())
	require.NoError(t, err)
	assert.True(t, booking.BookingDate.Equal(time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)))
}

func TestFetch_MergesServerAndCache(t *testing.T) {
	gateway := &fakeGateway{
		serverList: []*domain.Booking{
			{ID: "1", GuestName: "John Doe", Status: domain.StatusConfirmed},
		},
	}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "1", GuestName: "John Doe", Status: domain.StatusCancelled},
			{ID: "local_9", GuestName: "Jane Roe", Status: domain.StatusConfirmed},
		},
	}
	svc, _ := newTestService(gateway, cache)

	fetched, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, fetched, 2)
	assert.Equal(t, "1", fetched[0].ID)
	assert.Equal(t, domain.StatusConfirmed, fetched[0].Status)
	assert.Equal(t, "local_9", fetched[1].ID)

	// Кэш самовосстанавливается: слитый результат записан обратно
	assert.Equal(t, bookingIDs(fetched), bookingIDs(cache.ReadAll()))
	assert.Equal(t, bookingIDs(fetched), bookingIDs(svc.Current()))
}

func TestFetch_DropsStaleServerIDRecord(t *testing.T) {
	gateway := &fakeGateway{serverList: []*domain.Booking{}}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "5", GuestName: "John Doe"},
		},
	}
	svc, _ := newTestService(gateway, cache)

	fetched, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, fetched)
	assert.Empty(t, cache.ReadAll())
}

func TestFetch_FallbackServesCache(t *testing.T) {
	gateway := &fakeGateway{failList: true}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "local_9", GuestName: "Jane Roe"},
		},
	}
	svc, metrics := newTestService(gateway, cache)

	fetched, err := svc.Fetch(context.Background())

	// Отказ сети не доходит до вызывающего, отдаются кэшированные данные
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "local_9", fetched[0].ID)
	assert.Equal(t, 1, metrics.fallbacks["fetch"])

	// Набор обновлен кэшированным списком
	assert.Equal(t, bookingIDs(fetched), bookingIDs(svc.Current()))
}

func TestFetch_IdempotentAcrossRepeats(t *testing.T) {
	gateway := &fakeGateway{
		serverList: []*domain.Booking{
			{ID: "1"},
			{ID: "2"},
		},
	}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "local_9"},
		},
	}
	svc, _ := newTestService(gateway, cache)

	first, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	second, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	// Повторное чтение с теми же серверными данными не накапливает дубликатов
	assert.Equal(t, bookingIDs(first), bookingIDs(second))
	assert.Len(t, second, 3)
}

func TestCancel_Success(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "42", GuestName: "John Doe", Status: domain.StatusConfirmed},
		},
	}
	svc, _ := newTestService(gateway, cache)

	cancelled, err := svc.Cancel(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, "John Doe", cancelled.GuestName)

	// Серверу ушел полный объект с новым статусом
	require.Len(t, gateway.updated, 1)
	assert.Equal(t, domain.StatusCancelled, gateway.updated[0].Status)

	// Набор и кэш обновлены
	assert.Equal(t, domain.StatusCancelled, svc.Current()[0].Status)
	assert.Equal(t, domain.StatusCancelled, cache.ReadAll()[0].Status)
}

func TestCancel_FallbackOnGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{failUpdate: true}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "42", Status: domain.StatusConfirmed},
		},
	}
	svc, metrics := newTestService(gateway, cache)

	cancelled, err := svc.Cancel(context.Background(), "42")

	// Отмена применяется локально даже при отказе сервера
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, domain.StatusCancelled, cache.ReadAll()[0].Status)
	assert.Equal(t, 1, metrics.fallbacks["cancel"])
}

func TestCancel_NotFound(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "42", Status: domain.StatusConfirmed},
		},
	}
	svc, _ := newTestService(gateway, cache)

	_, err := svc.Cancel(context.Background(), "999")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Набор не изменился, серверу ничего не отправлялось
	require.Len(t, svc.Current(), 1)
	assert.Equal(t, domain.StatusConfirmed, svc.Current()[0].Status)
	assert.Empty(t, gateway.updated)
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{}
	svc, _ := newTestService(gateway, cache)

	var notifications [][]*domain.Booking
	unsubscribe := svc.Subscribe(func(bookings []*domain.Booking) {
		notifications = append(notifications, bookings)
	})

	_, err := svc.Create(context.Background(), testRoom(), testForm())
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Len(t, notifications[0], 1)

	unsubscribe()

	_, err = svc.Create(context.Background(), testRoom(), testForm())
	require.NoError(t, err)
	// После отписки уведомлений больше нет
	assert.Len(t, notifications, 1)
}

func TestService_SeededFromCache(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "local_1", GuestName: "Jane Roe"},
		},
	}
	svc, _ := newTestService(gateway, cache)

	require.Len(t, svc.Current(), 1)
	assert.Equal(t, "local_1", svc.Current()[0].ID)
}

func TestByRoomIDAndGuestName(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{
		stored: []*domain.Booking{
			{ID: "1", RoomID: "7", GuestName: "John Doe"},
			{ID: "2", RoomID: "8", GuestName: "Jane Roe"},
			{ID: "3", RoomID: "7", GuestName: "John Smith"},
		},
	}
	svc, _ := newTestService(gateway, cache)

	byRoom := svc.ByRoomID("7")
	require.Len(t, byRoom, 2)

	byGuest := svc.ByGuestName("john")
	require.Len(t, byGuest, 2)

	assert.Empty(t, svc.ByGuestName("nobody"))
}

func TestClearAll(t *testing.T) {
	gateway := &fakeGateway{}
	cache := &fakeCache{
		stored: []*domain.Booking{{ID: "1"}},
	}
	svc, _ := newTestService(gateway, cache)

	svc.ClearAll()

	assert.Empty(t, svc.Current())
	assert.Empty(t, cache.ReadAll())
}
