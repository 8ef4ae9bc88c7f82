package wallet

import "errors"

var (
	// ErrInvalidAmount возвращается при нулевой или отрицательной сумме
	ErrInvalidAmount = errors.New("wallet: amount must be positive")

	// ErrInsufficientFunds возвращается, когда на балансе не хватает средств
	ErrInsufficientFunds = errors.New("wallet: insufficient funds")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("wallet: internal error")
)
