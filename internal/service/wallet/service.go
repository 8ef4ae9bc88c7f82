package wallet

import (
	"context"
	"fmt"

	"github.com/Eldarfox/easy-parking-maps/internal/events"
)

// Service кошелёк пользователя. Баланс хранится в целых сомах,
// отрицательным не бывает.
type Service struct {
	store  WalletStore
	bus    EventBus
	logger Logger
}

// NewService создает сервис кошелька
func NewService(store WalletStore, bus EventBus, logger Logger) *Service {
	return &Service{store: store, bus: bus, logger: logger}
}

// Balance возвращает текущий баланс
func (s *Service) Balance(ctx context.Context) (int64, error) {
	balance, err := s.store.Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: Balance - load balance: %v", ErrInternal, err)
	}
	return balance, nil
}

// TopUp пополняет баланс на amount и возвращает новый баланс
func (s *Service) TopUp(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.store.Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: TopUp - load balance: %v", ErrInternal, err)
	}

	balance += amount
	if err := s.store.SetBalance(ctx, balance); err != nil {
		return 0, fmt.Errorf("%w: TopUp - save balance: %v", ErrInternal, err)
	}

	s.logger.Info("TopUp: +%d, balance %d", amount, balance)
	s.publishChange(balance)
	return balance, nil
}

// Debit списывает amount с баланса и возвращает новый баланс.
// При нехватке средств баланс не меняется.
func (s *Service) Debit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.store.Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: Debit - load balance: %v", ErrInternal, err)
	}

	if balance < amount {
		return balance, ErrInsufficientFunds
	}

	balance -= amount
	if err := s.store.SetBalance(ctx, balance); err != nil {
		return 0, fmt.Errorf("%w: Debit - save balance: %v", ErrInternal, err)
	}

	s.logger.Info("Debit: -%d, balance %d", amount, balance)
	s.publishChange(balance)
	return balance, nil
}

// Refund возвращает amount на баланс (используется при откате бронирования)
func (s *Service) Refund(ctx context.Context, amount int64) (int64, error) {
	return s.TopUp(ctx, amount)
}

func (s *Service) publishChange(balance int64) {
	payload := struct {
		Balance int64 `json:"balance"`
	}{Balance: balance}

	if err := s.bus.Publish(events.TopicWallet, payload); err != nil {
		s.logger.Warn("failed to publish wallet change: %v", err)
	}
}
