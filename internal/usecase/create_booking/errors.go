package create_booking

import "errors"

var (
	// ErrParkingNotFound возвращается, когда парковка не найдена
	ErrParkingNotFound = errors.New("create_booking: parking not found")

	// ErrInvalidSpace возвращается, когда номера места нет на парковке
	ErrInvalidSpace = errors.New("create_booking: invalid space number")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrInvalidHours возвращается при диапазоне часов, недопустимом для тарифа
	ErrInvalidHours = errors.New("create_booking: invalid hour range for tariff")

	// ErrNightNotOffered возвращается, когда у парковки нет ночного тарифа
	ErrNightNotOffered = errors.New("create_booking: parking has no night tariff")

	// ErrSpaceUnavailable возвращается, когда место занято пересекающимся бронированием
	ErrSpaceUnavailable = errors.New("create_booking: space is unavailable for this time")

	// ErrInsufficientFunds возвращается при нехватке средств на кошельке
	ErrInsufficientFunds = errors.New("create_booking: insufficient funds")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
