package filestore

import (
	"context"
	"strconv"
	"strings"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

// Clock файловое хранилище состояния виртуальных часов.
// Состояние лежит в двух ключах: <clockKey>_base с текстом выбранного
// момента и <clockKey>_startedAt с реальным временем установки (millis).
type Clock struct {
	store *Store
}

func (c *Clock) baseKey() string      { return c.store.clockKey + "_base" }
func (c *Clock) startedAtKey() string { return c.store.clockKey + "_startedAt" }

// Load возвращает сохранённое состояние часов
func (c *Clock) Load(ctx context.Context) (domain.ClockState, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	base, okBase := c.store.read(c.baseKey())
	startedAt, okStarted := c.store.read(c.startedAtKey())
	if !okBase || !okStarted {
		return domain.ClockState{}, storage.ErrClockNotSet
	}

	anchor, err := strconv.ParseInt(strings.TrimSpace(string(startedAt)), 10, 64)
	if err != nil {
		return domain.ClockState{}, storage.ErrClockNotSet
	}

	return domain.ClockState{
		Base:             strings.TrimSpace(string(base)),
		AnchorRealMillis: anchor,
	}, nil
}

// Save сохраняет состояние часов
func (c *Clock) Save(ctx context.Context, state domain.ClockState) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if err := c.store.write(c.baseKey(), []byte(state.Base)); err != nil {
		return err
	}
	return c.store.write(c.startedAtKey(), []byte(strconv.FormatInt(state.AnchorRealMillis, 10)))
}

// Clear удаляет состояние часов
func (c *Clock) Clear(ctx context.Context) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if err := c.store.remove(c.baseKey()); err != nil {
		return err
	}
	return c.store.remove(c.startedAtKey())
}
