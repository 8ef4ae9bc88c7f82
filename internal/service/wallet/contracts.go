package wallet

import "context"

// WalletStore интерфейс хранилища баланса кошелька
type WalletStore interface {
	Balance(ctx context.Context) (int64, error)
	SetBalance(ctx context.Context, balance int64) error
}

// EventBus интерфейс шины событий
type EventBus interface {
	Publish(topic string, payload interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
