package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// ErrParkingNotFound возвращается, когда парковка не найдена в каталоге
var ErrParkingNotFound = errors.New("catalog: parking not found")

// Catalog справочник парковок. Данные статичны: бронирования их не меняют.
type Catalog struct {
	mu   sync.RWMutex
	byID map[string]*domain.Parking
	list []*domain.Parking
}

// New создает каталог из переданного списка парковок
func New(parkings []*domain.Parking) *Catalog {
	c := &Catalog{byID: make(map[string]*domain.Parking, len(parkings))}
	for _, p := range parkings {
		if p == nil || p.ID == "" {
			continue
		}
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = p
		c.list = append(c.list, p)
	}
	sort.Slice(c.list, func(i, j int) bool { return c.list[i].ID < c.list[j].ID })
	return c
}

// List возвращает все парковки каталога
func (c *Catalog) List(ctx context.Context) ([]*domain.Parking, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Parking, len(c.list))
	copy(out, c.list)
	return out, nil
}

// GetByID возвращает парковку по идентификатору
func (c *Catalog) GetByID(ctx context.Context, id string) (*domain.Parking, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrParkingNotFound
	}
	return p, nil
}
