package virtualclock

import (
	"context"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// ClockStore интерфейс хранилища состояния часов
type ClockStore interface {
	Load(ctx context.Context) (domain.ClockState, error)
	Save(ctx context.Context, state domain.ClockState) error
	Clear(ctx context.Context) error
}

// EventBus интерфейс шины изменений
type EventBus interface {
	Publish(topic string, payload any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
