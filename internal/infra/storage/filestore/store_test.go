package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), "mainClock")
	require.NoError(t, err)
	return s
}

func TestBookings_CreateAndReload(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	bookings := s.Bookings()

	created, err := bookings.Create(ctx, &domain.Booking{
		Status:    domain.StatusReserved,
		ParkingID: "1",
		SpaceNum:  2,
		Date:      domain.NewDate(2024, time.January, 15),
		Hours:     domain.NewHourRange(14, 17),
		Price:     280,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	// Повторное чтение с диска
	list, err := s.Bookings().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ParkingID)
	assert.Equal(t, domain.NewHourRange(14, 17), list[0].Hours)
	assert.Equal(t, "2024-01-15", list[0].Date.String())
}

func TestBookings_IDIsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	bookings := newTestStore(t).Bookings()

	first, err := bookings.Create(ctx, &domain.Booking{
		Status: domain.StatusReserved, ParkingID: "1",
		Date: domain.NewDate(2024, time.March, 1), Hours: domain.NewHourRange(9, 10),
	})
	require.NoError(t, err)
	second, err := bookings.Create(ctx, &domain.Booking{
		Status: domain.StatusReserved, ParkingID: "2",
		Date: domain.NewDate(2024, time.March, 1), Hours: domain.NewHourRange(11, 12),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)

	// После удаления первой записи идентификаторы не переиспользуются вниз
	require.NoError(t, bookings.Delete(ctx, first.ID))
	third, err := bookings.Create(ctx, &domain.Booking{
		Status: domain.StatusReserved, ParkingID: "3",
		Date: domain.NewDate(2024, time.March, 1), Hours: domain.NewHourRange(13, 14),
	})
	require.NoError(t, err)
	assert.Equal(t, second.ID+1, third.ID)
}

func TestBookings_LegacyDateFormatAccepted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	raw := `[{"id":7,"status":"active","parkingId":"1","spaceNum":0,"date":"15.01.2024","time":"14:00 - 18:00","price":210}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, domain.KeyBookings), []byte(raw), 0o644))

	list, err := s.Bookings().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-01-15", list[0].Date.String())
	assert.Equal(t, domain.NewHourRange(14, 17), list[0].Hours)
	assert.Equal(t, domain.StatusActive, list[0].Status)
}

func TestBookings_MalformedFileIsEmptyList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, domain.KeyBookings), []byte("{not json"), 0o644))

	list, err := s.Bookings().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookings_NotFound(t *testing.T) {
	ctx := context.Background()
	bookings := newTestStore(t).Bookings()

	_, err := bookings.GetByID(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
	assert.ErrorIs(t, bookings.Delete(ctx, 42), storage.ErrBookingNotFound)
}

func TestWallet_DefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	wallet := newTestStore(t).Wallet(500)

	balance, err := wallet.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	require.NoError(t, wallet.SetBalance(ctx, 1200))
	balance, err = wallet.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), balance)
}

func TestWallet_MalformedFallsBackToInitial(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, domain.KeyWalletBalance), []byte("garbage"), 0o644))

	balance, err := s.Wallet(0).Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestClock_RoundTripAndClear(t *testing.T) {
	ctx := context.Background()
	clock := newTestStore(t).Clock()

	_, err := clock.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrClockNotSet)

	state := domain.ClockState{Base: "2024-01-15 17:30:00", AnchorRealMillis: 1705310000000}
	require.NoError(t, clock.Save(ctx, state))

	loaded, err := clock.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	require.NoError(t, clock.Clear(ctx))
	_, err = clock.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrClockNotSet)
}

func TestParkingsCache_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.LoadParkings())

	parkings := []*domain.Parking{{
		ID: "1", Name: "Тестовая парковка", Address: "Бишкек",
		TotalSpaces: 4,
		Prices: []domain.Price{
			{Label: "1 час", Amount: 70, Currency: "сом"},
		},
		NightHours:   &domain.HourWindow{From: 20, To: 8},
		WorkingHours: domain.HourWindow{From: 7, To: 24},
	}}
	require.NoError(t, s.SaveParkings(parkings))

	loaded := s.LoadParkings()
	require.Len(t, loaded, 1)
	assert.Equal(t, "1 час", loaded[0].Prices[0].Label)
	assert.Equal(t, int64(70), loaded[0].Prices[0].Amount)
	require.NotNil(t, loaded[0].NightHours)
	assert.Equal(t, domain.HourWindow{From: 20, To: 8}, *loaded[0].NightHours)
}
