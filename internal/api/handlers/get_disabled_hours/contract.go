package get_disabled_hours

import (
	"context"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

type AvailabilityService interface {
	DisabledHoursFor(ctx context.Context, parkingID string, date domain.Date, spaceNum int) ([]int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
