package filestore

import (
	"context"
	"strconv"
	"strings"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// Wallet файловое хранилище баланса (ключ cabinet_wallet_balance,
// значение - целое число в текстовом виде)
type Wallet struct {
	store   *Store
	initial int64
}

// Balance возвращает баланс; отсутствующий или нечитаемый ключ
// даёт начальное значение
func (w *Wallet) Balance(ctx context.Context) (int64, error) {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	data, ok := w.store.read(domain.KeyWalletBalance)
	if !ok {
		return w.initial, nil
	}
	balance, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return w.initial, nil
	}
	return balance, nil
}

// SetBalance сохраняет баланс
func (w *Wallet) SetBalance(ctx context.Context, balance int64) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	return w.store.write(domain.KeyWalletBalance, []byte(strconv.FormatInt(balance, 10)))
}
