package get_bookings

import (
	"context"

	bookingsService "github.com/Eldarfox/easy-parking-maps/internal/service/bookings"
)

type BookingsService interface {
	List(ctx context.Context) ([]*bookingsService.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
