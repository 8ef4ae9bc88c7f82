package storage

import "errors"

// Общие ошибки хранилищ. Бэкенды взаимозаменяемы, поэтому сентинелы
// объявлены один раз и возвращаются каждой реализацией.
var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("storage: booking not found")

	// ErrClockNotSet возвращается, когда состояние виртуальных часов не сохранено
	ErrClockNotSet = errors.New("storage: clock state not set")
)
