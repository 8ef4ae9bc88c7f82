package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHourRange возвращается при некорректном диапазоне часов
var ErrInvalidHourRange = errors.New("domain: invalid hour range")

// HourRange диапазон часов с включительными границами.
// End < Start означает диапазон через полночь ("ночной" диапазон).
type HourRange struct {
	Start int
	End   int
}

// NewHourRange создает диапазон с включительными границами
func NewHourRange(start, end int) HourRange {
	return HourRange{Start: start, End: end}
}

// ParseHourRange разбирает текст вида "14:00 - 18:00".
// Отображаемый конец диапазона исключительный, поэтому при разборе
// он уменьшается на один час: "14:00 - 18:00" -> [14, 17].
func ParseHourRange(s string) (HourRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return HourRange{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, s)
	}

	start, err := parseHour(parts[0])
	if err != nil {
		return HourRange{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, s)
	}
	displayEnd, err := parseHour(parts[1])
	if err != nil {
		return HourRange{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, s)
	}

	end := displayEnd - 1
	if end < 0 {
		end = 23
	}

	r := HourRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return HourRange{}, err
	}
	return r, nil
}

func parseHour(s string) (int, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) < 1 || len(fields) > 2 {
		return 0, ErrInvalidHourRange
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil || h < 0 || h > 24 {
		return 0, ErrInvalidHourRange
	}
	return h, nil
}

// Validate проверяет, что границы лежат в пределах суток
func (r HourRange) Validate() error {
	if r.Start < 0 || r.Start > 23 || r.End < 0 || r.End > 23 {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidHourRange, r.Start, r.End)
	}
	return nil
}

// Wraps true, если диапазон переходит через полночь
func (r HourRange) Wraps() bool {
	return r.End < r.Start
}

// HourCount количество часов, входящих в диапазон
func (r HourRange) HourCount() int {
	if r.Wraps() {
		return 24 - r.Start + r.End + 1
	}
	return r.End - r.Start + 1
}

// DurationMinutes длительность диапазона в минутах.
// Разница считается по отображаемому (исключительному) концу; если она
// неположительная, диапазон проходит через полночь и добавляются сутки.
func (r HourRange) DurationMinutes() int {
	minutes := (r.End + 1 - r.Start) * 60
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return minutes
}

// Hours перечисляет часы диапазона с учётом перехода через полночь
func (r HourRange) Hours() []int {
	hours := make([]int, 0, r.HourCount())
	h := r.Start
	for {
		hours = append(hours, h)
		if h == r.End {
			return hours
		}
		h = (h + 1) % 24
	}
}

// Contains true, если час входит в диапазон
func (r HourRange) Contains(hour int) bool {
	if r.Wraps() {
		return hour >= r.Start || hour <= r.End
	}
	return hour >= r.Start && hour <= r.End
}

// Overlaps проверяет пересечение двух диапазонов с включительными границами.
// Для диапазонов в пределах одних суток достаточно сравнения границ;
// диапазоны через полночь сравниваются по множествам часов.
func (r HourRange) Overlaps(other HourRange) bool {
	if !r.Wraps() && !other.Wraps() {
		return r.Start <= other.End && r.End >= other.Start
	}
	for _, h := range r.Hours() {
		if other.Contains(h) {
			return true
		}
	}
	return false
}

// String форматирует диапазон в вид "14:00 - 18:00"
// (отображаемый конец на час больше включительного)
func (r HourRange) String() string {
	return fmt.Sprintf("%02d:00 - %02d:00", r.Start, r.End+1)
}
