// Package runtime is the support library imported by generated code.
package runtime

import (
	"context"
	"database/sql"
)

// Queryer is the database handle generated methods run against. Both
// *sql.DB and *sql.Tx satisfy it, so callers can use the methods inside or
// outside a transaction.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
)
