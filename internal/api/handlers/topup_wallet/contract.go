package topup_wallet

import "context"

type WalletService interface {
	TopUp(ctx context.Context, amount int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
