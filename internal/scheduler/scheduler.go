package scheduler

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Eldarfox/easy-parking-maps/internal/events"
)

// LifecycleEvaluator пересчёт статусов бронирований
type LifecycleEvaluator interface {
	Evaluate(ctx context.Context) (int, error)
}

// EventBus подписка на события шины
type EventBus interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодически пересчитывает статусы бронирований.
// Перевод виртуальных часов запускает пересчёт немедленно, не дожидаясь
// очередного тика.
type Scheduler struct {
	lifecycle LifecycleEvaluator
	bus       EventBus
	logger    Logger
	interval  time.Duration
}

// New создает планировщик с заданным интервалом пересчёта
func New(lifecycle LifecycleEvaluator, bus EventBus, logger Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Scheduler{
		lifecycle: lifecycle,
		bus:       bus,
		logger:    logger,
		interval:  interval,
	}
}

// Run блокирует до отмены контекста, пересчитывая статусы по таймеру
// и по событиям перевода часов
func (s *Scheduler) Run(ctx context.Context) error {
	clockEvents, err := s.bus.Subscribe(ctx, events.TopicClock)
	if err != nil {
		s.logger.Warn("scheduler: clock subscription failed, falling back to timer only: %v", err)
		clockEvents = nil
	}

	s.evaluate(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler: stopped")
			return ctx.Err()

		case <-ticker.C:
			s.evaluate(ctx)

		case msg, ok := <-clockEvents:
			if !ok {
				clockEvents = nil
				continue
			}
			msg.Ack()
			s.evaluate(ctx)
		}
	}
}

func (s *Scheduler) evaluate(ctx context.Context) {
	n, err := s.lifecycle.Evaluate(ctx)
	if err != nil {
		s.logger.Error("scheduler: lifecycle evaluation failed: %v", err)
		return
	}
	if n > 0 {
		s.logger.Info("scheduler: %d booking(s) changed status", n)
	}
}
