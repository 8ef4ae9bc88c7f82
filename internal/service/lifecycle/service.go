package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/events"
)

// Service переводит бронирования по статусам вслед за временем.
// Переходы только вперёд: reserved -> active -> completed, обратного
// движения нет даже если часы перевели назад.
type Service struct {
	bookings BookingStore
	clock    Clock
	bus      EventBus
	metrics  MetricsCollector
	logger   Logger
}

// NewService создает сервис жизненного цикла бронирований
func NewService(bookings BookingStore, clock Clock, bus EventBus, metrics MetricsCollector, logger Logger) *Service {
	return &Service{
		bookings: bookings,
		clock:    clock,
		bus:      bus,
		metrics:  metrics,
		logger:   logger,
	}
}

// Evaluate пересчитывает статусы всех незавершённых бронирований
// относительно текущего виртуального времени и возвращает число переходов
func (s *Service) Evaluate(ctx context.Context) (int, error) {
	list, err := s.bookings.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: Evaluate - list bookings: %v", ErrInternal, err)
	}

	now := s.clock.Now(ctx)
	transitions := 0

	for _, b := range list {
		if b.IsCompleted() {
			continue
		}

		next := nextStatus(b, now)
		if next == b.Status {
			continue
		}

		if err := s.bookings.UpdateStatus(ctx, b.ID, next); err != nil {
			s.logger.Error("Evaluate: failed to update booking %d status to %s: %v", b.ID, next, err)
			continue
		}

		s.logger.Info("Evaluate: booking %d %s -> %s", b.ID, b.Status, next)
		s.metrics.IncLifecycleTransition(string(b.Status), string(next))
		s.publishChange(b.ID, b.Status, next)
		transitions++
	}

	return transitions, nil
}

// CanCancel true, если бронирование ещё не началось и до начала
// остаётся не меньше domain.CancelNoticeMinutes минут
func (s *Service) CanCancel(b *domain.Booking, now time.Time) bool {
	if b.IsCompleted() {
		return false
	}

	start, _ := bookingInstants(b)
	if !now.Before(start) {
		return false
	}
	return start.Sub(now) >= domain.CancelNoticeMinutes*time.Minute
}

// nextStatus вычисляет статус бронирования на момент now.
// Статус никогда не откатывается назад.
func nextStatus(b *domain.Booking, now time.Time) domain.BookingStatus {
	start, end := bookingInstants(b)

	if !now.Before(end) {
		return domain.StatusCompleted
	}
	if !now.Before(start) && b.Status == domain.StatusReserved {
		return domain.StatusActive
	}
	return b.Status
}

// bookingInstants возвращает моменты начала и конца бронирования.
// Конец - следующий час после последнего включительного; диапазон через
// полночь заканчивается на следующие сутки.
func bookingInstants(b *domain.Booking) (start, end time.Time) {
	start = b.Date.At(b.Hours.Start, 0)

	displayEnd := b.Hours.End + 1
	if displayEnd <= b.Hours.Start {
		displayEnd += 24
	}
	end = b.Date.At(displayEnd, 0)
	return start, end
}

func (s *Service) publishChange(id int64, from, to domain.BookingStatus) {
	payload := struct {
		BookingID int64  `json:"bookingId"`
		From      string `json:"from"`
		To        string `json:"to"`
	}{BookingID: id, From: string(from), To: string(to)}

	if err := s.bus.Publish(events.TopicBookings, payload); err != nil {
		s.logger.Warn("failed to publish booking status change: %v", err)
	}
}
