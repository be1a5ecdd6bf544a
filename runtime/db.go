package runtime

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// driverName maps dialect names to database/sql driver names.
func driverName(dialect string) string {
	switch dialect {
	case "postgres", "postgresql":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return ""
	}
}

// Open opens a database handle for the given dialect. The supported
// dialects are postgres, sqlite, and mysql.
func Open(dialect, dsn string) (*sql.DB, error) {
	driver := driverName(dialect)
	if driver == "" {
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
	return sql.Open(driver, dsn)
}

// Connect opens a database handle and verifies the connection.
func Connect(ctx context.Context, dialect, dsn string) (*sql.DB, error) {
	db, err := Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
