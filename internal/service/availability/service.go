package availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// Service расчёт доступности мест и часов. Все операции - чистые чтения
// текущего списка бронирований; завершённые бронирования место не занимают.
type Service struct {
	bookings BookingStore
	logger   Logger
}

// NewService создает сервис доступности
func NewService(bookings BookingStore, logger Logger) *Service {
	return &Service{bookings: bookings, logger: logger}
}

// DisabledHoursFor возвращает занятые часы места spaceNum парковки
// parkingID на дату date (объединение часов всех пересекающихся
// незавершённых бронирований)
func (s *Service) DisabledHoursFor(ctx context.Context, parkingID string, date domain.Date, spaceNum int) ([]int, error) {
	list, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: DisabledHoursFor - list bookings: %v", ErrInternal, err)
	}

	occupied := make(map[int]struct{})
	for _, b := range list {
		if !b.Blocks() || b.ParkingID != parkingID || b.SpaceNum != spaceNum || !b.Date.Equal(date) {
			continue
		}
		for _, h := range b.Hours.Hours() {
			occupied[h] = struct{}{}
		}
	}

	hours := make([]int, 0, len(occupied))
	for h := range occupied {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours, nil
}

// UnavailableSpaces возвращает места парковки, у которых есть незавершённое
// бронирование, пересекающееся с кандидатским диапазоном на дату date
func (s *Service) UnavailableSpaces(ctx context.Context, parkingID string, date domain.Date, candidate domain.HourRange) ([]int, error) {
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	list, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: UnavailableSpaces - list bookings: %v", ErrInternal, err)
	}

	taken := make(map[int]struct{})
	for _, b := range list {
		if !b.Blocks() || b.ParkingID != parkingID || !b.Date.Equal(date) {
			continue
		}
		if candidate.Overlaps(b.Hours) {
			taken[b.SpaceNum] = struct{}{}
		}
	}

	spaces := make([]int, 0, len(taken))
	for n := range taken {
		spaces = append(spaces, n)
	}
	sort.Ints(spaces)
	return spaces, nil
}

// FreeSpaces возвращает свободные места парковки для кандидатского диапазона
func (s *Service) FreeSpaces(ctx context.Context, parking *domain.Parking, date domain.Date, candidate domain.HourRange) ([]int, error) {
	unavailable, err := s.UnavailableSpaces(ctx, parking.ID, date, candidate)
	if err != nil {
		return nil, err
	}

	takenSet := make(map[int]struct{}, len(unavailable))
	for _, n := range unavailable {
		takenSet[n] = struct{}{}
	}

	free := make([]int, 0, parking.TotalSpaces)
	for n := 0; n < parking.TotalSpaces; n++ {
		if _, taken := takenSet[n]; !taken {
			free = append(free, n)
		}
	}
	return free, nil
}
