package memstore

import (
	"context"
	"sync"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

// Bookings потокобезопасное хранилище бронирований в памяти.
// Используется как бэкенд без конфигурации и как дублёр в тестах.
type Bookings struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.Booking
	nextID int64
}

// NewBookings создает пустое хранилище бронирований
func NewBookings() *Bookings {
	return &Bookings{byID: make(map[int64]*domain.Booking), nextID: 1}
}

// List возвращает все бронирования
func (s *Bookings) List(ctx context.Context) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Booking, 0, len(s.byID))
	for _, b := range s.byID {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

// GetByID возвращает бронирование по идентификатору
func (s *Bookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

// Create сохраняет бронирование и присваивает ему идентификатор
func (s *Bookings) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = s.nextID
	s.nextID++
	clone := *booking
	s.byID[booking.ID] = &clone
	return booking, nil
}

// UpdateStatus меняет статус бронирования
func (s *Bookings) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

// Delete удаляет бронирование
func (s *Bookings) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return storage.ErrBookingNotFound
	}
	delete(s.byID, id)
	return nil
}

// Wallet хранилище баланса кошелька в памяти
type Wallet struct {
	mu      sync.RWMutex
	balance int64
}

// NewWallet создает кошелек с начальным балансом
func NewWallet(initial int64) *Wallet {
	return &Wallet{balance: initial}
}

// Balance возвращает текущий баланс
func (w *Wallet) Balance(ctx context.Context) (int64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.balance, nil
}

// SetBalance сохраняет новый баланс
func (w *Wallet) SetBalance(ctx context.Context, balance int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balance = balance
	return nil
}

// Clock хранилище состояния виртуальных часов в памяти
type Clock struct {
	mu    sync.RWMutex
	state domain.ClockState
	set   bool
}

// NewClock создает хранилище без установленного состояния
func NewClock() *Clock {
	return &Clock{}
}

// Load возвращает сохранённое состояние часов
func (c *Clock) Load(ctx context.Context) (domain.ClockState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return domain.ClockState{}, storage.ErrClockNotSet
	}
	return c.state, nil
}

// Save сохраняет состояние часов
func (c *Clock) Save(ctx context.Context, state domain.ClockState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.set = true
	return nil
}

// Clear сбрасывает состояние часов
func (c *Clock) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.ClockState{}
	c.set = false
	return nil
}
