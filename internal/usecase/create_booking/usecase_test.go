package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/catalog"
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	walletService "github.com/Eldarfox/easy-parking-maps/internal/service/wallet"
	"github.com/Eldarfox/easy-parking-maps/pkg/ptr"
)

type stubRepo struct {
	created []*domain.Booking
	nextID  int64
	fail    bool
}

func (r *stubRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.fail {
		return nil, assert.AnError
	}
	r.nextID++
	clone := *b
	clone.ID = r.nextID
	r.created = append(r.created, &clone)
	return &clone, nil
}

type stubCatalog struct {
	parking *domain.Parking
}

func (c stubCatalog) GetByID(_ context.Context, id string) (*domain.Parking, error) {
	if c.parking == nil || c.parking.ID != id {
		return nil, catalog.ErrParkingNotFound
	}
	return c.parking, nil
}

type stubAvailability struct {
	unavailable []int
}

func (a stubAvailability) UnavailableSpaces(_ context.Context, _ string, _ domain.Date, _ domain.HourRange) ([]int, error) {
	return a.unavailable, nil
}

type stubPricing struct{}

func (stubPricing) Price(p *domain.Parking, tariff domain.TariffKind, hours domain.HourRange) (int64, error) {
	if tariff == domain.TariffHourly {
		return 70 * int64(hours.HourCount()), nil
	}
	return 300, nil
}

type stubWallet struct {
	balance  int64
	refunded int64
}

func (w *stubWallet) Debit(_ context.Context, amount int64) (int64, error) {
	if w.balance < amount {
		return w.balance, walletService.ErrInsufficientFunds
	}
	w.balance -= amount
	return w.balance, nil
}

func (w *stubWallet) Refund(_ context.Context, amount int64) (int64, error) {
	w.balance += amount
	w.refunded += amount
	return w.balance, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now(_ context.Context) time.Time { return c.now }

type nopBus struct{}

func (nopBus) Publish(string, interface{}) error { return nil }

type countingMetrics struct {
	created int
}

func (m *countingMetrics) IncBookingCreated() { m.created++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testParking() *domain.Parking {
	return &domain.Parking{
		ID:          "1",
		Name:        "ЦУМ Паркинг",
		TotalSpaces: 10,
		Prices: []domain.Price{
			{Label: "1 час", Amount: 70, Currency: "сом"},
			{Label: "Ночь", Amount: 300, Currency: "сом"},
		},
		NightHours:   ptr.Ptr(domain.HourWindow{From: 20, To: 8}),
		WorkingHours: domain.HourWindow{From: 8, To: 24},
	}
}

func validRequest() *Request {
	return &Request{
		ParkingID: "1",
		SpaceNum:  2,
		Date:      domain.NewDate(2024, 1, 15),
		Hours:     domain.NewHourRange(10, 12),
		Tariff:    domain.TariffHourly,
	}
}

type fixture struct {
	repo    *stubRepo
	wallet  *stubWallet
	metrics *countingMetrics
	uc      *UseCase
}

func newFixture(balance int64, unavailable []int) *fixture {
	f := &fixture{
		repo:    &stubRepo{},
		wallet:  &stubWallet{balance: balance},
		metrics: &countingMetrics{},
	}
	f.uc = NewUseCase(
		f.repo,
		stubCatalog{parking: testParking()},
		stubAvailability{unavailable: unavailable},
		stubPricing{},
		f.wallet,
		fixedClock{now: time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)},
		nopBus{},
		f.metrics,
		nopLogger{},
	)
	return f
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(500, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusReserved), resp.Status)
	assert.Equal(t, "ЦУМ Паркинг", resp.ParkingName)
	assert.Equal(t, "10:00 - 13:00", resp.TimeText)
	assert.Equal(t, int64(210), resp.Price)
	assert.Equal(t, int64(290), resp.Balance)
	assert.Equal(t, 1, f.metrics.created)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, domain.StatusReserved, f.repo.created[0].Status)
}

func TestUseCase_Execute_ParkingNotFound(t *testing.T) {
	f := newFixture(500, nil)
	req := validRequest()
	req.ParkingID = "99"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrParkingNotFound)
}

func TestUseCase_Execute_InvalidSpace(t *testing.T) {
	f := newFixture(500, nil)
	req := validRequest()
	req.SpaceNum = 10

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSpace)
}

func TestUseCase_Execute_SpaceUnavailable(t *testing.T) {
	f := newFixture(500, []int{2, 5})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceUnavailable)
	assert.Empty(t, f.repo.created)
	assert.Equal(t, int64(500), f.wallet.balance)
}

func TestUseCase_Execute_InsufficientFunds(t *testing.T) {
	f := newFixture(100, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Empty(t, f.repo.created)
	assert.Equal(t, int64(100), f.wallet.balance)
}

func TestUseCase_Execute_DateInPast(t *testing.T) {
	f := newFixture(500, nil)
	req := validRequest()
	req.Date = domain.NewDate(2024, 1, 14)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestUseCase_Execute_HourlyCannotWrap(t *testing.T) {
	f := newFixture(500, nil)
	req := validRequest()
	req.Hours = domain.NewHourRange(22, 1)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestUseCase_Execute_NightTariff(t *testing.T) {
	f := newFixture(500, nil)
	req := validRequest()
	req.Tariff = domain.TariffNight
	req.Hours = domain.NewHourRange(22, 1)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Price)
}

func TestUseCase_Execute_NightNotOffered(t *testing.T) {
	f := newFixture(500, nil)
	parking := testParking()
	parking.NightHours = nil
	f.uc.parkings = stubCatalog{parking: parking}

	req := validRequest()
	req.Tariff = domain.TariffNight
	req.Hours = domain.NewHourRange(22, 1)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNightNotOffered)
}

func TestUseCase_Execute_DailyUsesWorkingHours(t *testing.T) {
	f := newFixture(500, nil)
	req := validRequest()
	req.Tariff = domain.TariffDaily

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, domain.NewHourRange(8, 23), f.repo.created[0].Hours)
	assert.Equal(t, int64(300), resp.Price)
}

func TestUseCase_Execute_RefundOnCreateFailure(t *testing.T) {
	f := newFixture(500, nil)
	f.repo.fail = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, int64(500), f.wallet.balance)
	assert.Equal(t, int64(210), f.wallet.refunded)
}
