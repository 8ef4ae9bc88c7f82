package get_clock

import (
	"context"

	"github.com/Eldarfox/easy-parking-maps/internal/service/virtualclock"
)

type ClockService interface {
	GetInfo(ctx context.Context) virtualclock.Info
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
