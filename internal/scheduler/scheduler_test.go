package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/events"
)

type countingEvaluator struct {
	calls atomic.Int64
}

func (e *countingEvaluator) Evaluate(_ context.Context) (int, error) {
	e.calls.Add(1)
	return 0, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestScheduler_EvaluatesOnStartAndTick(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	eval := &countingEvaluator{}
	s := New(eval, bus, nopLogger{}, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Один вызов на старте плюс несколько тиков
	assert.GreaterOrEqual(t, eval.calls.Load(), int64(3))
}

func TestScheduler_ClockEventTriggersEvaluation(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	eval := &countingEvaluator{}
	s := New(eval, bus, nopLogger{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Ждём стартовый вызов, затем шлём событие перевода часов
	require.Eventually(t, func() bool { return eval.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Publish(events.TopicClock, struct{}{}))
	require.Eventually(t, func() bool { return eval.calls.Load() >= 2 }, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
