package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Eldarfox/easy-parking-maps/pkg/psqlbuilder"
)

const table = "wallet"

// Баланс кошелька хранится одной строкой с фиксированным ключом:
// кошелек в системе один.
const walletID = 1

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("wallet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("wallet.repository: failed to execute query")
)

// DBExecutor минимальный интерфейс для выполнения запросов
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository репозиторий баланса кошелька поверх PostgreSQL
type Repository struct {
	db      DBExecutor
	initial int64
}

// NewRepository создает репозиторий. initial - баланс, возвращаемый
// пока строка кошелька ещё не создана.
func NewRepository(db DBExecutor, initial int64) *Repository {
	return &Repository{db: db, initial: initial}
}

// Balance возвращает текущий баланс
func (r *Repository) Balance(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("balance").
		From(table).
		Where(squirrel.Eq{"id": walletID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Balance - build select query: %v", ErrBuildQuery, err)
	}

	var balance int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return r.initial, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Balance - execute select: %v", ErrExecQuery, err)
	}
	return balance, nil
}

// SetBalance сохраняет новый баланс (upsert)
func (r *Repository) SetBalance(ctx context.Context, balance int64) error {
	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "balance").
		Values(walletID, balance).
		Suffix("ON CONFLICT (id) DO UPDATE SET balance = EXCLUDED.balance").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBalance - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetBalance - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
