package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eldarfox/easy-parking-maps/internal/catalog"
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/events"
	walletService "github.com/Eldarfox/easy-parking-maps/internal/service/wallet"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	parkings     ParkingCatalog
	availability AvailabilityChecker
	pricing      PriceCalculator
	wallet       Wallet
	clock        Clock
	bus          EventBus
	metrics      MetricsCollector
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	parkings ParkingCatalog,
	availability AvailabilityChecker,
	pricing PriceCalculator,
	wallet Wallet,
	clock Clock,
	bus EventBus,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		parkings:     parkings,
		availability: availability,
		pricing:      pricing,
		wallet:       wallet,
		clock:        clock,
		bus:          bus,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования: резервирует место,
// списывает стоимость с кошелька и сохраняет запись со статусом reserved
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: parking=%s, space=%d, date=%s, time=%s, tariff=%s",
		req.ParkingID, req.SpaceNum, req.Date, req.Hours, req.Tariff)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее виртуальное время
	now := uc.clock.Now(ctx)

	// 3. Получаем парковку из каталога
	parking, err := uc.parkings.GetByID(ctx, req.ParkingID)
	if err != nil {
		if errors.Is(err, catalog.ErrParkingNotFound) {
			uc.logger.Warn("CreateBooking: parking %s not found", req.ParkingID)
			return nil, ErrParkingNotFound
		}
		uc.logger.Error("CreateBooking: failed to get parking %s: %v", req.ParkingID, err)
		return nil, fmt.Errorf("%w: failed to get parking: %v", ErrInternal, err)
	}

	// 4. Проверяем номер места
	if !parking.ValidSpace(req.SpaceNum) {
		uc.logger.Warn("CreateBooking: space %d does not exist at parking %s", req.SpaceNum, req.ParkingID)
		return nil, ErrInvalidSpace
	}

	// 5. Проверяем диапазон часов против тарифа
	hours, err := resolveHours(parking, req.Tariff, req.Hours)
	if err != nil {
		uc.logger.Warn("CreateBooking: hours validation failed: %v", err)
		return nil, err
	}

	// 6. Проверяем, что день бронирования не в прошлом
	if err := validateDateNotInPast(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past (now %s)", req.Date, now.Format(domain.ClockFormat))
		return nil, err
	}

	// 7. Проверяем занятость места
	unavailable, err := uc.availability.UnavailableSpaces(ctx, req.ParkingID, req.Date, hours)
	if err != nil {
		uc.logger.Error("CreateBooking: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}
	for _, n := range unavailable {
		if n == req.SpaceNum {
			uc.logger.Warn("CreateBooking: space %d at parking %s is taken for %s %s",
				req.SpaceNum, req.ParkingID, req.Date, hours)
			return nil, ErrSpaceUnavailable
		}
	}

	// 8. Считаем стоимость
	price, err := uc.pricing.Price(parking, req.Tariff, hours)
	if err != nil {
		uc.logger.Error("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	// 9. Списываем стоимость с кошелька
	balance, err := uc.wallet.Debit(ctx, price)
	if err != nil {
		if errors.Is(err, walletService.ErrInsufficientFunds) {
			uc.logger.Warn("CreateBooking: insufficient funds, price=%d, balance=%d", price, balance)
			return nil, ErrInsufficientFunds
		}
		uc.logger.Error("CreateBooking: debit failed: %v", err)
		return nil, fmt.Errorf("%w: debit: %v", ErrInternal, err)
	}

	// 10. Сохраняем бронирование
	booking := &domain.Booking{
		Status:    domain.StatusReserved,
		ParkingID: req.ParkingID,
		SpaceNum:  req.SpaceNum,
		Date:      req.Date,
		Hours:     hours,
		Price:     price,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		// Возвращаем списанные средства
		if _, refundErr := uc.wallet.Refund(ctx, price); refundErr != nil {
			uc.logger.Error("CreateBooking: refund after failed create also failed: %v", refundErr)
		}
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%d", created.ID, price)
	uc.metrics.IncBookingCreated()
	uc.publishCreated(created)

	return &Response{
		ID:          created.ID,
		Status:      string(created.Status),
		ParkingID:   created.ParkingID,
		ParkingName: parking.Name,
		SpaceNum:    created.SpaceNum,
		Date:        created.Date,
		TimeText:    created.Hours.String(),
		Price:       created.Price,
		Balance:     balance,
	}, nil
}

func (uc *UseCase) publishCreated(b *domain.Booking) {
	payload := struct {
		BookingID int64  `json:"bookingId"`
		Action    string `json:"action"`
	}{BookingID: b.ID, Action: "created"}

	if err := uc.bus.Publish(events.TopicBookings, payload); err != nil {
		uc.logger.Warn("failed to publish booking creation: %v", err)
	}
}
