package get_available_spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eldarfox/easy-parking-maps/internal/catalog"
)

// UseCase use case для получения свободных мест парковки
type UseCase struct {
	parkings     ParkingCatalog
	availability AvailabilityChecker
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(parkings ParkingCatalog, availability AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		parkings:     parkings,
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case: возвращает свободные и занятые места
// парковки для кандидатского диапазона часов на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSpaces: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем парковку из каталога
	parking, err := uc.parkings.GetByID(ctx, req.ParkingID)
	if err != nil {
		if errors.Is(err, catalog.ErrParkingNotFound) {
			uc.logger.Warn("GetAvailableSpaces: parking %s not found", req.ParkingID)
			return nil, ErrParkingNotFound
		}
		uc.logger.Error("GetAvailableSpaces: failed to get parking %s: %v", req.ParkingID, err)
		return nil, fmt.Errorf("%w: failed to get parking: %v", ErrInternal, err)
	}

	// 3. Получаем занятые места
	unavailable, err := uc.availability.UnavailableSpaces(ctx, req.ParkingID, req.Date, req.Hours)
	if err != nil {
		uc.logger.Error("GetAvailableSpaces: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}

	// 4. Собираем свободные как дополнение к занятым
	taken := make(map[int]struct{}, len(unavailable))
	for _, n := range unavailable {
		taken[n] = struct{}{}
	}

	free := make([]int, 0, parking.TotalSpaces)
	for n := 0; n < parking.TotalSpaces; n++ {
		if _, ok := taken[n]; !ok {
			free = append(free, n)
		}
	}

	return &Response{
		ParkingID:   parking.ID,
		TotalSpaces: parking.TotalSpaces,
		Free:        free,
		Unavailable: unavailable,
	}, nil
}
