package availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне часов
	ErrInvalidRange = errors.New("availability: invalid hour range")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)
