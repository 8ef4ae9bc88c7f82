package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Топики шины изменений. Подписчики получают уведомление после каждой
// записи в соответствующее хранилище (замена неявных событий
// браузерного хранилища из первой версии приложения).
const (
	TopicBookings = "bookings.changed"
	TopicWallet   = "wallet.changed"
	TopicClock    = "clock.changed"
)

// Bus внутрипроцессная шина pub/sub поверх watermill gochannel
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus создает шину
func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NopLogger{}),
	}
}

// Publish публикует событие с JSON-полезной нагрузкой
func (b *Bus) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal payload for %s: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe возвращает канал сообщений топика; канал закрывается
// при отмене контекста
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}
	return ch, nil
}

// Close останавливает шину
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
