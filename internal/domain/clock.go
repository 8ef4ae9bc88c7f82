package domain

import "time"

// ClockState сохранённое состояние виртуальных часов.
// Base - выбранный оператором момент времени, AnchorRealMillis - реальное
// время (unix millis) в момент установки Base. Виртуальное "сейчас"
// продолжает идти вперёд от Base в темпе реального времени.
type ClockState struct {
	Base             string // "2006-01-02 15:04:05"
	AnchorRealMillis int64
}

// IsZero true, если состояние не установлено
func (s ClockState) IsZero() bool {
	return s.Base == "" || s.AnchorRealMillis == 0
}

// NowAt вычисляет виртуальное "сейчас" для реального момента real.
// Пустое или нечитаемое состояние даёт реальное время.
func (s ClockState) NowAt(real time.Time) time.Time {
	if s.IsZero() {
		return real
	}
	base, err := time.ParseInLocation(ClockFormat, s.Base, time.Local)
	if err != nil {
		return real
	}
	// Дельта округляется вниз до секунд - виртуальные часы тикают посекундно
	deltaSec := (real.UnixMilli() - s.AnchorRealMillis) / 1000
	return base.Add(time.Duration(deltaSec) * time.Second)
}
