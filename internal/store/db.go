package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle used by store implementations.
// Both *sql.DB and *sql.Tx satisfy it, so the same store code runs
// against a pooled connection or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
