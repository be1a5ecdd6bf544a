package codegen

import (
	"fmt"
	"strings"
)

// Dialect captures the SQL differences between the supported databases:
// placeholder style, RETURNING support, and upsert syntax. Everything else
// in the synthesized statements is common.
type Dialect interface {
	Name() string
	// Placeholder returns the parameter marker for the 1-based position n.
	Placeholder(n int) string
	// SupportsReturning reports whether INSERT/UPDATE can return the row.
	SupportsReturning() bool
	// UpsertSuffix returns the conflict clause appended to an INSERT to turn
	// it into an upsert over the identifier columns.
	UpsertSuffix(idColumns, updateColumns []string) string
	// DriverName returns the database/sql driver name generated code opens.
	DriverName() string
}

// PostgresDialect generates statements for PostgreSQL.
type PostgresDialect struct{}

// Name returns the dialect name.
func (PostgresDialect) Name() string { return "postgres" }

// Placeholder returns $n.
func (PostgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

// SupportsReturning returns true.
func (PostgresDialect) SupportsReturning() bool { return true }

// UpsertSuffix returns an ON CONFLICT clause targeting the identifier columns.
func (PostgresDialect) UpsertSuffix(idColumns, updateColumns []string) string {
	return onConflictSuffix(idColumns, updateColumns)
}

// DriverName returns the lib/pq driver name.
func (PostgresDialect) DriverName() string { return "postgres" }

// SQLiteDialect generates statements for SQLite.
type SQLiteDialect struct{}

// Name returns the dialect name.
func (SQLiteDialect) Name() string { return "sqlite" }

// Placeholder returns ?.
func (SQLiteDialect) Placeholder(n int) string { return "?" }

// SupportsReturning returns true; SQLite has supported RETURNING since 3.35.
func (SQLiteDialect) SupportsReturning() bool { return true }

// UpsertSuffix returns an ON CONFLICT clause targeting the identifier columns.
func (SQLiteDialect) UpsertSuffix(idColumns, updateColumns []string) string {
	return onConflictSuffix(idColumns, updateColumns)
}

// DriverName returns the mattn/go-sqlite3 driver name.
func (SQLiteDialect) DriverName() string { return "sqlite3" }

// MySQLDialect generates statements for MySQL.
type MySQLDialect struct{}

// Name returns the dialect name.
func (MySQLDialect) Name() string { return "mysql" }

// Placeholder returns ?.
func (MySQLDialect) Placeholder(n int) string { return "?" }

// SupportsReturning returns false; mutating methods refetch after executing.
func (MySQLDialect) SupportsReturning() bool { return false }

// UpsertSuffix returns an ON DUPLICATE KEY UPDATE clause. MySQL resolves the
// conflict through the table's primary key, which the schema contract
// guarantees to be the identifier columns.
func (MySQLDialect) UpsertSuffix(idColumns, updateColumns []string) string {
	if len(updateColumns) == 0 {
		// MySQL requires at least one assignment; a self-assignment makes
		// the statement a no-op on conflict.
		col := idColumns[0]
		return fmt.Sprintf(" ON DUPLICATE KEY UPDATE %s = %s", col, col)
	}
	assignments := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		assignments[i] = fmt.Sprintf("%s = VALUES(%s)", col, col)
	}
	return " ON DUPLICATE KEY UPDATE " + strings.Join(assignments, ", ")
}

// DriverName returns the go-sql-driver/mysql driver name.
func (MySQLDialect) DriverName() string { return "mysql" }

func onConflictSuffix(idColumns, updateColumns []string) string {
	if len(updateColumns) == 0 {
		return fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(idColumns, ", "))
	}
	assignments := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		assignments[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	return fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s",
		strings.Join(idColumns, ", "), strings.Join(assignments, ", "))
}

// ParseDialect maps a provider name from the CLI or config to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "postgres", "postgresql":
		return PostgresDialect{}, nil
	case "sqlite", "sqlite3":
		return SQLiteDialect{}, nil
	case "mysql":
		return MySQLDialect{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q (expected postgres, sqlite, or mysql)", name)
	}
}
