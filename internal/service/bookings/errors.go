package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrCannotCancel возвращается, когда отмена уже не разрешена
	ErrCannotCancel = errors.New("bookings: booking can no longer be cancelled")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("bookings: internal error")
)
