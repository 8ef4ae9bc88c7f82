package domain

import (
	"errors"
	"time"
)

// ErrInvalidDate возвращается, когда текст даты не удалось разобрать
var ErrInvalidDate = errors.New("domain: invalid date")

// Date календарный день без времени суток.
// Все внутренние вычисления работают с этим типом; разбор текстовых
// форматов изолирован в ParseDate.
type Date struct {
	t time.Time
}

// NewDate создает дату из компонентов
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf обрезает время суток у переданного момента
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate разбирает дату в одном из двух принятых текстовых форматов:
// "2006-01-02" либо "02.01.2006"
func ParseDate(s string) (Date, error) {
	if t, err := time.ParseInLocation(DateFormat, s, time.Local); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.ParseInLocation(LegacyDateFormat, s, time.Local); err == nil {
		return DateOf(t), nil
	}
	return Date{}, ErrInvalidDate
}

// IsZero true для незаполненной даты
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal сравнивает календарные дни
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before true, если d раньше other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// At возвращает момент времени в этот день. hour может быть больше 23 -
// тогда момент нормализуется на следующие сутки (полезно для диапазонов
// через полночь).
func (d Date) At(hour, minute int) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), hour, minute, 0, 0, d.t.Location())
}

// String канонический текстовый вид даты
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateFormat)
}

// MarshalJSON сериализует дату в каноническом формате
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON принимает оба текстовых формата
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
