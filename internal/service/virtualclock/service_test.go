package virtualclock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage/memstore"
)

type nopBus struct{}

func (nopBus) Publish(topic string, payload any) error { return nil }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *time.Time) {
	real := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	svc := NewService(memstore.NewClock(), nopBus{}, nopLogger{})
	svc.realNow = func() time.Time { return real }
	return svc, &real
}

func TestService_RealTimeWithoutState(t *testing.T) {
	ctx := context.Background()
	svc, real := newTestService()

	assert.Equal(t, *real, svc.Now(ctx))

	info := svc.GetInfo(ctx)
	assert.False(t, info.Simulated)
	assert.Equal(t, *real, info.Now)
}

func TestService_SetNowRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	target := time.Date(2024, time.January, 15, 17, 59, 0, 0, time.Local)
	require.NoError(t, svc.SetNow(ctx, target))

	assert.Equal(t, target, svc.Now(ctx))
	assert.True(t, svc.GetInfo(ctx).Simulated)
}

func TestService_AdvancesWithRealTime(t *testing.T) {
	ctx := context.Background()
	svc, real := newTestService()

	target := time.Date(2024, time.January, 15, 17, 59, 0, 0, time.Local)
	require.NoError(t, svc.SetNow(ctx, target))

	// Реальное время ушло вперёд на 90 секунд - виртуальное тоже
	*real = real.Add(90 * time.Second)
	assert.Equal(t, target.Add(90*time.Second), svc.Now(ctx))
}

func TestService_ResetBackToRealTime(t *testing.T) {
	ctx := context.Background()
	svc, real := newTestService()

	require.NoError(t, svc.SetNow(ctx, time.Date(2030, time.May, 1, 0, 0, 0, 0, time.Local)))
	require.NoError(t, svc.Reset(ctx))

	assert.Equal(t, *real, svc.Now(ctx))
	assert.False(t, svc.GetInfo(ctx).Simulated)
}

func TestService_GarbageStateFallsBackToRealTime(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewClock()
	require.NoError(t, store.Save(ctx, domain.ClockState{Base: "not a timestamp", AnchorRealMillis: 12345}))

	svc := NewService(store, nopBus{}, nopLogger{})
	real := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	svc.realNow = func() time.Time { return real }

	assert.Equal(t, real, svc.Now(ctx))
}
