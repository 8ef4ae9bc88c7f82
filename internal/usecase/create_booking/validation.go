package create_booking

import (
	"fmt"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ParkingID == "" {
		return fmt.Errorf("%w: parkingId is required", ErrInvalidInput)
	}

	if req.SpaceNum < 0 {
		return fmt.Errorf("%w: spaceNum must not be negative", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.ValidTariff(req.Tariff) {
		return fmt.Errorf("%w: unknown tariff %q", ErrInvalidInput, req.Tariff)
	}

	if err := req.Hours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolveHours проверяет диапазон часов против тарифа и парковки
// и возвращает фактически бронируемый диапазон.
// Дневной тариф всегда занимает все рабочие часы парковки.
func resolveHours(parking *domain.Parking, tariff domain.TariffKind, hours domain.HourRange) (domain.HourRange, error) {
	switch tariff {
	case domain.TariffDaily:
		return parking.WorkingHours.Range(), nil

	case domain.TariffNight:
		if !parking.HasNightTariff() {
			return domain.HourRange{}, ErrNightNotOffered
		}
		night := parking.NightHours.Range()
		if !containsRange(night, hours) {
			return domain.HourRange{}, fmt.Errorf("%w: hours outside night window %s", ErrInvalidHours, night)
		}
		return hours, nil

	default:
		if hours.Wraps() {
			return domain.HourRange{}, fmt.Errorf("%w: hourly booking cannot cross midnight", ErrInvalidHours)
		}
		working := parking.WorkingHours.Range()
		if !containsRange(working, hours) {
			return domain.HourRange{}, fmt.Errorf("%w: hours outside working hours %s", ErrInvalidHours, working)
		}
		return hours, nil
	}
}

// containsRange проверяет, что каждый час диапазона inner входит в outer
func containsRange(outer, inner domain.HourRange) bool {
	for _, h := range inner.Hours() {
		if !outer.Contains(h) {
			return false
		}
	}
	return true
}

// validateDateNotInPast проверяет, что день бронирования ещё не прошёл
func validateDateNotInPast(date domain.Date, now time.Time) error {
	if date.Before(domain.DateOf(now)) {
		return ErrDateInPast
	}
	return nil
}
