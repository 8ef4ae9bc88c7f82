package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/events"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

// Service чтение и отмена бронирований. Создание вынесено в отдельный
// usecase, здесь остаются операции над уже существующими записями.
type Service struct {
	store   BookingStore
	catalog ParkingCatalog
	prices  PriceList
	policy  CancelPolicy
	clock   Clock
	bus     EventBus
	metrics MetricsCollector
	logger  Logger
}

// NewService создает сервис бронирований
func NewService(
	store BookingStore,
	catalog ParkingCatalog,
	prices PriceList,
	policy CancelPolicy,
	clock Clock,
	bus EventBus,
	metrics MetricsCollector,
	logger Logger,
) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		prices:  prices,
		policy:  policy,
		clock:   clock,
		bus:     bus,
		metrics: metrics,
		logger:  logger,
	}
}

// List возвращает все бронирования, обогащённые данными парковок
func (s *Service) List(ctx context.Context) ([]*BookingView, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: List - list bookings: %v", ErrInternal, err)
	}

	now := s.clock.Now(ctx)
	views := make([]*BookingView, 0, len(list))
	for _, b := range list {
		views = append(views, s.buildView(ctx, b, now))
	}
	return views, nil
}

// GetByID возвращает одно бронирование
func (s *Service) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - load booking: %v", ErrInternal, err)
	}
	return s.buildView(ctx, b, s.clock.Now(ctx)), nil
}

// Cancel отменяет бронирование, если до его начала остаётся достаточный
// запас времени. Запись удаляется из хранилища.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Cancel - load booking: %v", ErrInternal, err)
	}

	if !s.policy.CanCancel(b, s.clock.Now(ctx)) {
		return ErrCannotCancel
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Cancel - delete booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %d cancelled", id)
	s.metrics.IncBookingCancelled()
	s.publishCancelled(id)
	return nil
}

// buildView обогащает бронирование данными парковки.
// Отсутствие парковки в каталоге не ломает выдачу списка.
func (s *Service) buildView(ctx context.Context, b *domain.Booking, now time.Time) *BookingView {
	view := &BookingView{
		ID:        b.ID,
		Status:    b.Status,
		ParkingID: b.ParkingID,
		SpaceNum:  b.SpaceNum,
		Date:      b.Date,
		TimeText:  b.Hours.String(),
		Price:     b.Price,
		CanCancel: s.policy.CanCancel(b, now),
	}

	parking, err := s.catalog.GetByID(ctx, b.ParkingID)
	if err != nil {
		s.logger.Warn("buildView: parking %s not in catalog: %v", b.ParkingID, err)
		return view
	}

	view.ParkingName = parking.Name
	view.ParkingAddress = parking.Address
	if rate, err := s.prices.HourlyRate(parking); err == nil {
		view.HourlyRate = rate
	}
	return view
}

func (s *Service) publishCancelled(id int64) {
	payload := struct {
		BookingID int64  `json:"bookingId"`
		Action    string `json:"action"`
	}{BookingID: id, Action: "cancelled"}

	if err := s.bus.Publish(events.TopicBookings, payload); err != nil {
		s.logger.Warn("failed to publish booking cancellation: %v", err)
	}
}
