package create_booking

import (
	"context"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ParkingCatalog справочник парковок
type ParkingCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Parking, error)
}

// AvailabilityChecker проверка занятости мест
type AvailabilityChecker interface {
	UnavailableSpaces(ctx context.Context, parkingID string, date domain.Date, candidate domain.HourRange) ([]int, error)
}

// PriceCalculator расчёт стоимости бронирования
type PriceCalculator interface {
	Price(parking *domain.Parking, tariff domain.TariffKind, hours domain.HourRange) (int64, error)
}

// Wallet кошелёк пользователя
type Wallet interface {
	Debit(ctx context.Context, amount int64) (int64, error)
	Refund(ctx context.Context, amount int64) (int64, error)
}

// Clock источник текущего времени (виртуальные часы)
type Clock interface {
	Now(ctx context.Context) time.Time
}

// EventBus интерфейс шины событий
type EventBus interface {
	Publish(topic string, payload interface{}) error
}

// MetricsCollector счётчики бронирований
type MetricsCollector interface {
	IncBookingCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
