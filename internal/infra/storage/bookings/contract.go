package bookings

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс для выполнения запросов.
// Его реализуют *sql.DB и *sql.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
