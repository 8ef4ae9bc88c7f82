package timerange

import (
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/pkg/ptr"
)

// Selection текущее состояние выбора диапазона часов.
// Start без End означает, что выбрано только начало.
type Selection struct {
	Start *int
	End   *int
}

// IsEmpty true, если не выбрано ничего
func (s Selection) IsEmpty() bool {
	return s.Start == nil
}

// IsComplete true, если выбраны обе границы
func (s Selection) IsComplete() bool {
	return s.Start != nil && s.End != nil
}

// Range возвращает выбранный диапазон, если выбор завершён
func (s Selection) Range() (domain.HourRange, bool) {
	if !s.IsComplete() {
		return domain.HourRange{}, false
	}
	return domain.NewHourRange(*s.Start, *s.End), true
}

// Selector реализует протокол выбора диапазона двумя кликами по часам:
// первый клик фиксирует начало, второй - конец (повторный клик по началу
// сбрасывает выбор, клик при завершённом выборе начинает новый).
// В ночном режиме результат всегда представляет диапазон через полночь.
type Selector struct {
	displayed map[int]bool
	disabled  map[int]bool
	night     bool
	selection Selection
}

// NewSelector создает селектор для набора отображаемых часов hours.
// Клики по часам из disabled игнорируются.
func NewSelector(hours []int, disabled []int, night bool) *Selector {
	s := &Selector{
		displayed: make(map[int]bool, len(hours)),
		disabled:  make(map[int]bool, len(disabled)),
		night:     night,
	}
	for _, h := range hours {
		s.displayed[h] = true
	}
	for _, h := range disabled {
		s.disabled[h] = true
	}
	return s
}

// DefaultHours часы селектора по умолчанию (8..23)
func DefaultHours() []int {
	hours := make([]int, 0, domain.DefaultLastDisplayHour-domain.DefaultFirstDisplayHour+1)
	for h := domain.DefaultFirstDisplayHour; h <= domain.DefaultLastDisplayHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Selection возвращает текущее состояние выбора
func (s *Selector) Selection() Selection {
	return s.selection
}

// Reset сбрасывает выбор
func (s *Selector) Reset() {
	s.selection = Selection{}
}

// Click обрабатывает клик по часу hour и возвращает новое состояние выбора.
// Клик по недоступному или не отображаемому часу ничего не меняет.
func (s *Selector) Click(hour int) Selection {
	if !s.displayed[hour] || s.disabled[hour] {
		return s.selection
	}

	switch {
	case s.selection.IsEmpty() || s.selection.IsComplete():
		// Начало нового выбора
		s.selection = Selection{Start: ptr.Ptr(hour)}

	case *s.selection.Start == hour:
		// Повторный клик по началу - сброс
		s.selection = Selection{}

	default:
		s.complete(hour)
	}

	return s.selection
}

// complete завершает выбор вторым кликом
func (s *Selector) complete(hour int) {
	start := *s.selection.Start
	end := hour

	if s.night {
		// Ночной диапазон всегда идёт через полночь: если клики дали
		// диапазон в пределах суток, границы меняются местами
		if start < end {
			start, end = end, start
		}
		s.selection = Selection{Start: ptr.Ptr(start), End: ptr.Ptr(end)}
		return
	}

	if end < start {
		start, end = end, start
	}
	// Диапазон с недоступным часом внутри отклоняется, выбор остаётся прежним
	for h := start; h <= end; h++ {
		if s.disabled[h] {
			return
		}
	}
	s.selection = Selection{Start: ptr.Ptr(start), End: ptr.Ptr(end)}
}
