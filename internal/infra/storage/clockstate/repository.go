package clockstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
	"github.com/Eldarfox/easy-parking-maps/pkg/psqlbuilder"
)

const table = "clock_state"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("clockstate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("clockstate.repository: failed to execute query")
)

// DBExecutor минимальный интерфейс для выполнения запросов
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository репозиторий состояния виртуальных часов поверх PostgreSQL.
// Состояние хранится одной строкой на ключ часов.
type Repository struct {
	db  DBExecutor
	key string
}

// NewRepository создает репозиторий для ключа часов key
func NewRepository(db DBExecutor, key string) *Repository {
	if key == "" {
		key = domain.DefaultClockKey
	}
	return &Repository{db: db, key: key}
}

// Load возвращает сохранённое состояние часов
func (r *Repository) Load(ctx context.Context) (domain.ClockState, error) {
	query, args, err := psqlbuilder.Select("base", "anchor_ms").
		From(table).
		Where(squirrel.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		return domain.ClockState{}, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var state domain.ClockState
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&state.Base, &state.AnchorRealMillis)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ClockState{}, storage.ErrClockNotSet
	}
	if err != nil {
		return domain.ClockState{}, fmt.Errorf("%w: Load - execute select: %v", ErrExecQuery, err)
	}
	return state, nil
}

// Save сохраняет состояние часов (upsert)
func (r *Repository) Save(ctx context.Context, state domain.ClockState) error {
	query, args, err := psqlbuilder.Insert(table).
		Columns("key", "base", "anchor_ms").
		Values(r.key, state.Base, state.AnchorRealMillis).
		Suffix("ON CONFLICT (key) DO UPDATE SET base = EXCLUDED.base, anchor_ms = EXCLUDED.anchor_ms").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Clear удаляет состояние часов
func (r *Repository) Clear(ctx context.Context) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
