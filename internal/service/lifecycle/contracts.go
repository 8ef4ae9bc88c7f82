package lifecycle

import (
	"context"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// Clock источник текущего времени (виртуальные часы)
type Clock interface {
	Now(ctx context.Context) time.Time
}

// EventBus интерфейс шины событий
type EventBus interface {
	Publish(topic string, payload interface{}) error
}

// MetricsCollector счётчики переходов статусов
type MetricsCollector interface {
	IncLifecycleTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
