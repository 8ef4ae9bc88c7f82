package pricing

import (
	"strings"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// Подстроки, по которым тариф ищется в подписи прайса
const (
	labelHourly = "час"
	labelDaily  = "день"
	labelNight  = "ноч"
)

// Service расчёт стоимости бронирования по прайсу парковки
type Service struct{}

// NewService создает сервис расчёта стоимости
func NewService() *Service {
	return &Service{}
}

// Price считает стоимость бронирования диапазона hours по тарифу tariff.
// Почасовой тариф умножается на число начатых часов, дневной и ночной
// берутся фиксированной суммой.
func (s *Service) Price(parking *domain.Parking, tariff domain.TariffKind, hours domain.HourRange) (int64, error) {
	if !domain.ValidTariff(tariff) {
		return 0, ErrUnknownTariff
	}

	entry, err := findPrice(parking, tariff)
	if err != nil {
		return 0, err
	}

	if tariff != domain.TariffHourly {
		return entry.Amount, nil
	}

	minutes := hours.DurationMinutes()
	billed := int64(minutes / 60)
	if minutes%60 != 0 {
		billed++
	}
	return entry.Amount * billed, nil
}

// HourlyRate возвращает почасовую ставку парковки
// (или первую позицию прайса, если почасовой подписи нет)
func (s *Service) HourlyRate(parking *domain.Parking) (int64, error) {
	entry, err := findPrice(parking, domain.TariffHourly)
	if err != nil {
		return 0, err
	}
	return entry.Amount, nil
}

// findPrice ищет позицию прайса по подстроке в подписи.
// При отсутствии совпадений берётся первая позиция.
func findPrice(parking *domain.Parking, tariff domain.TariffKind) (domain.Price, error) {
	if len(parking.Prices) == 0 {
		return domain.Price{}, ErrNoPrices
	}

	var needle string
	switch tariff {
	case domain.TariffHourly:
		needle = labelHourly
	case domain.TariffDaily:
		needle = labelDaily
	case domain.TariffNight:
		needle = labelNight
	default:
		return domain.Price{}, ErrUnknownTariff
	}

	for _, p := range parking.Prices {
		if strings.Contains(strings.ToLower(p.Label), needle) {
			return p, nil
		}
	}
	return parking.Prices[0], nil
}
