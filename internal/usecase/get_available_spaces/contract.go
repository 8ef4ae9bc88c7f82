package get_available_spaces

import (
	"context"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// ParkingCatalog справочник парковок
type ParkingCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Parking, error)
}

// AvailabilityChecker проверка занятости мест
type AvailabilityChecker interface {
	UnavailableSpaces(ctx context.Context, parkingID string, date domain.Date, candidate domain.HourRange) ([]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
