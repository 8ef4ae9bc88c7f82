package get_parkings

import (
	"context"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

type ParkingCatalog interface {
	List(ctx context.Context) ([]*domain.Parking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
