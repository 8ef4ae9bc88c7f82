package set_clock

import (
	"context"
	"time"
)

type ClockService interface {
	SetNow(ctx context.Context, t time.Time) error
	Reset(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
