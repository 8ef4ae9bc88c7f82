package domain

// TariffKind вид тарифа
type TariffKind string

const (
	TariffHourly TariffKind = "hourly"
	TariffDaily  TariffKind = "daily"
	TariffNight  TariffKind = "night"
)

// ValidTariff проверяет, что вид тарифа известен системе
func ValidTariff(t TariffKind) bool {
	switch t {
	case TariffHourly, TariffDaily, TariffNight:
		return true
	}
	return false
}

// Price позиция прайс-листа парковки
type Price struct {
	Label    string
	Amount   int64
	Currency string
}

// HourWindow окно часов работы [From, To) в часах 0-23.
// To < From означает окно через полночь (например ночные часы {20, 8}).
type HourWindow struct {
	From int
	To   int
}

// Wraps true, если окно переходит через полночь
func (w HourWindow) Wraps() bool {
	return w.To < w.From
}

// SpanHours длительность окна в часах
func (w HourWindow) SpanHours() int {
	if w.Wraps() {
		return 24 - w.From + w.To
	}
	return w.To - w.From
}

// Range представляет окно как диапазон с включительными границами
func (w HourWindow) Range() HourRange {
	end := w.To - 1
	if end < 0 {
		end = 23
	}
	return HourRange{Start: w.From, End: end}
}

// DisplayHours часы окна, доступные для выбора в селекторе
func (w HourWindow) DisplayHours() []int {
	return w.Range().Hours()
}

// Parking represents a parking lot with numbered spaces and a tariff table
type Parking struct {
	ID             string
	Name           string
	Address        string
	Lat            float64
	Lng            float64
	DistanceMeters int
	TotalSpaces    int
	Prices         []Price
	NightHours     *HourWindow
	WorkingHours   HourWindow
}

// HasNightTariff true, если у парковки настроено ночное окно
func (p *Parking) HasNightTariff() bool {
	return p.NightHours != nil
}

// ValidSpace проверяет, что номер места существует на парковке
func (p *Parking) ValidSpace(spaceNum int) bool {
	return spaceNum >= 0 && spaceNum < p.TotalSpaces
}
