package virtualclock

import "errors"

var (
	// ErrInvalidTime возвращается при попытке установить нулевое время
	ErrInvalidTime = errors.New("virtualclock: invalid time")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("virtualclock: internal error")
)
