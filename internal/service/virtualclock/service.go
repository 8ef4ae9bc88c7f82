package virtualclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/events"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

// Service виртуальные часы приложения. Оператор устанавливает момент
// "сейчас", после чего часы продолжают идти вперёд в темпе реального
// времени. Без установленного состояния часы показывают реальное время.
type Service struct {
	store   ClockStore
	bus     EventBus
	logger  Logger
	realNow func() time.Time
}

// NewService создает сервис виртуальных часов
func NewService(store ClockStore, bus EventBus, logger Logger) *Service {
	return &Service{
		store:   store,
		bus:     bus,
		logger:  logger,
		realNow: time.Now,
	}
}

// Info сведения о текущем состоянии часов
type Info struct {
	Now       time.Time
	Simulated bool
}

// Now возвращает текущее виртуальное время.
// Ошибки чтения состояния деградируют до реального времени.
func (s *Service) Now(ctx context.Context) time.Time {
	state, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrClockNotSet) {
			s.logger.Warn("Now: failed to load clock state: %v", err)
		}
		return s.realNow()
	}
	return state.NowAt(s.realNow())
}

// GetInfo возвращает виртуальное "сейчас" и признак симуляции
func (s *Service) GetInfo(ctx context.Context) Info {
	state, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrClockNotSet) {
			s.logger.Warn("GetInfo: failed to load clock state: %v", err)
		}
		return Info{Now: s.realNow(), Simulated: false}
	}
	return Info{Now: state.NowAt(s.realNow()), Simulated: !state.IsZero()}
}

// SetNow устанавливает виртуальное "сейчас". Дальше часы идут вперёд
// от выбранного момента вместе с реальным временем.
func (s *Service) SetNow(ctx context.Context, t time.Time) error {
	if t.IsZero() {
		return ErrInvalidTime
	}

	state := domain.ClockState{
		Base:             t.Format(domain.ClockFormat),
		AnchorRealMillis: s.realNow().UnixMilli(),
	}
	if err := s.store.Save(ctx, state); err != nil {
		s.logger.Error("SetNow: failed to save clock state: %v", err)
		return fmt.Errorf("%w: save clock state: %v", ErrInternal, err)
	}

	s.logger.Info("SetNow: virtual clock set to %s", state.Base)
	s.publishChange(ctx)
	return nil
}

// Reset сбрасывает часы на реальное время
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("Reset: failed to clear clock state: %v", err)
		return fmt.Errorf("%w: clear clock state: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: virtual clock back to real time")
	s.publishChange(ctx)
	return nil
}

func (s *Service) publishChange(ctx context.Context) {
	payload := struct {
		Now string `json:"now"`
	}{Now: s.Now(ctx).Format(domain.ClockFormat)}

	if err := s.bus.Publish(events.TopicClock, payload); err != nil {
		s.logger.Warn("failed to publish clock change: %v", err)
	}
}
