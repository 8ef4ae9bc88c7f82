package pricing

import "errors"

var (
	// ErrNoPrices возвращается, если у парковки нет тарифов
	ErrNoPrices = errors.New("pricing: parking has no prices")

	// ErrUnknownTariff возвращается при неизвестном виде тарифа
	ErrUnknownTariff = errors.New("pricing: unknown tariff kind")
)
