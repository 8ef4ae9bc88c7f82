package availability

import (
	"context"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
