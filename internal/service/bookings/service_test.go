package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

type stubStore struct {
	byID    map[int64]*domain.Booking
	deleted []int64
}

func newStubStore(bookings ...*domain.Booking) *stubStore {
	s := &stubStore{byID: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		s.byID[b.ID] = b
	}
	return s
}

func (s *stubStore) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(s.byID))
	for _, b := range s.byID {
		out = append(out, b)
	}
	return out, nil
}

func (s *stubStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return storage.ErrBookingNotFound
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubCatalog struct {
	parking *domain.Parking
}

func (c stubCatalog) GetByID(_ context.Context, id string) (*domain.Parking, error) {
	if c.parking == nil || c.parking.ID != id {
		return nil, assert.AnError
	}
	return c.parking, nil
}

type stubPrices struct {
	rate int64
}

func (p stubPrices) HourlyRate(_ *domain.Parking) (int64, error) { return p.rate, nil }

type stubPolicy struct {
	allow bool
}

func (p stubPolicy) CanCancel(_ *domain.Booking, _ time.Time) bool { return p.allow }

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now(_ context.Context) time.Time { return c.now }

type nopBus struct{}

func (nopBus) Publish(string, interface{}) error { return nil }

type countingMetrics struct {
	cancelled int
}

func (m *countingMetrics) IncBookingCancelled() { m.cancelled++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testParking() *domain.Parking {
	return &domain.Parking{
		ID:      "1",
		Name:    "ЦУМ Паркинг",
		Address: "ул. Киевская, 148",
		Prices:  []domain.Price{{Label: "1 час", Amount: 70, Currency: "сом"}},
	}
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:        1,
		Status:    domain.StatusReserved,
		ParkingID: "1",
		SpaceNum:  2,
		Date:      domain.NewDate(2024, 1, 15),
		Hours:     domain.NewHourRange(14, 17),
		Price:     280,
	}
}

func newTestService(store *stubStore, policy stubPolicy, metrics *countingMetrics) *Service {
	return NewService(
		store,
		stubCatalog{parking: testParking()},
		stubPrices{rate: 70},
		policy,
		fixedClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)},
		nopBus{},
		metrics,
		nopLogger{},
	)
}

func TestService_List_EnrichesWithParkingData(t *testing.T) {
	svc := newTestService(newStubStore(testBooking()), stubPolicy{allow: true}, &countingMetrics{})

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "ЦУМ Паркинг", v.ParkingName)
	assert.Equal(t, "ул. Киевская, 148", v.ParkingAddress)
	assert.Equal(t, "14:00 - 18:00", v.TimeText)
	assert.Equal(t, int64(70), v.HourlyRate)
	assert.True(t, v.CanCancel)
}

func TestService_List_UnknownParkingStillListed(t *testing.T) {
	b := testBooking()
	b.ParkingID = "99"
	svc := newTestService(newStubStore(b), stubPolicy{allow: true}, &countingMetrics{})

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].ParkingName)
	assert.Equal(t, "99", views[0].ParkingID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(newStubStore(), stubPolicy{allow: true}, &countingMetrics{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	store := newStubStore(testBooking())
	metrics := &countingMetrics{}
	svc := newTestService(store, stubPolicy{allow: true}, metrics)

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, store.deleted)
	assert.Equal(t, 1, metrics.cancelled)
}

func TestService_Cancel_TooLate(t *testing.T) {
	store := newStubStore(testBooking())
	svc := newTestService(store, stubPolicy{allow: false}, &countingMetrics{})

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, store.deleted)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := newTestService(newStubStore(), stubPolicy{allow: true}, &countingMetrics{})

	err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
