package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// Store файловое хранилище: один файл на ключ в каталоге данных.
// Формат ключей и содержимого совместим с первой (браузерной) версией
// приложения, поэтому нечитаемые данные молча заменяются значениями
// по умолчанию, а не приводят к ошибке.
type Store struct {
	dir      string
	clockKey string
	mu       sync.Mutex
}

// New создает хранилище в каталоге dir. clockKey - префикс ключей
// состояния виртуальных часов (обычно "mainClock").
func New(dir, clockKey string) (*Store, error) {
	if clockKey == "" {
		clockKey = domain.DefaultClockKey
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir: %w", err)
	}
	return &Store{dir: dir, clockKey: clockKey}, nil
}

// Bookings возвращает хранилище бронирований поверх этого Store
func (s *Store) Bookings() *Bookings {
	return &Bookings{store: s}
}

// Wallet возвращает хранилище баланса поверх этого Store.
// initial - баланс, используемый пока ключ отсутствует или нечитаем.
func (s *Store) Wallet(initial int64) *Wallet {
	return &Wallet{store: s, initial: initial}
}

// Clock возвращает хранилище состояния часов поверх этого Store
func (s *Store) Clock() *Clock {
	return &Clock{store: s}
}

// read возвращает содержимое ключа; false - ключ отсутствует или нечитаем
func (s *Store) read(key string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// write атомарно записывает содержимое ключа
func (s *Store) write(key string, data []byte) error {
	path := filepath.Join(s.dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("filestore: rename key %s: %w", key, err)
	}
	return nil
}

// remove удаляет ключ; отсутствие ключа не считается ошибкой
func (s *Store) remove(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: remove key %s: %w", key, err)
	}
	return nil
}
