package bookings

import (
	"context"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// ParkingCatalog справочник парковок
type ParkingCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Parking, error)
}

// PriceList источник почасовой ставки парковки
type PriceList interface {
	HourlyRate(parking *domain.Parking) (int64, error)
}

// CancelPolicy решает, можно ли ещё отменить бронирование
type CancelPolicy interface {
	CanCancel(b *domain.Booking, now time.Time) bool
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
	IncBookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
