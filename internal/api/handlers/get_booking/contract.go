package get_booking

import (
	"context"

	bookingsService "github.com/Eldarfox/easy-parking-maps/internal/service/bookings"
)

type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*bookingsService.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
