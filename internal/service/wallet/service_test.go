package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	balance int64
}

func (s *stubStore) Balance(_ context.Context) (int64, error) { return s.balance, nil }

func (s *stubStore) SetBalance(_ context.Context, balance int64) error {
	s.balance = balance
	return nil
}

type nopBus struct{}

func (nopBus) Publish(string, interface{}) error { return nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_TopUp(t *testing.T) {
	store := &stubStore{balance: 100}
	svc := NewService(store, nopBus{}, nopLogger{})

	balance, err := svc.TopUp(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, int64(350), balance)
	assert.Equal(t, int64(350), store.balance)
}

func TestService_TopUp_InvalidAmount(t *testing.T) {
	svc := NewService(&stubStore{}, nopBus{}, nopLogger{})

	_, err := svc.TopUp(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.TopUp(context.Background(), -50)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestService_Debit(t *testing.T) {
	store := &stubStore{balance: 500}
	svc := NewService(store, nopBus{}, nopLogger{})

	balance, err := svc.Debit(context.Background(), 210)
	require.NoError(t, err)
	assert.Equal(t, int64(290), balance)
}

func TestService_Debit_InsufficientFunds(t *testing.T) {
	store := &stubStore{balance: 100}
	svc := NewService(store, nopBus{}, nopLogger{})

	_, err := svc.Debit(context.Background(), 210)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100), store.balance)
}

func TestService_Debit_ExactBalance(t *testing.T) {
	store := &stubStore{balance: 210}
	svc := NewService(store, nopBus{}, nopLogger{})

	balance, err := svc.Debit(context.Background(), 210)
	require.NoError(t, err)
	assert.Zero(t, balance)
}
