package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsAreDistinct(t *testing.T) {
	require.NotErrorIs(t, ErrNotFound, ErrNotUnique)
	require.EqualError(t, ErrNotFound, "georm: row not found")
	require.EqualError(t, ErrNotUnique, "georm: more than one row matched")
}

// Open does not dial, but the drivers validate the DSN shape eagerly.
func TestOpenDialects(t *testing.T) {
	for dialect, dsn := range map[string]string{
		"postgres":   "postgres://localhost:5432/catalog?sslmode=disable",
		"postgresql": "postgres://localhost:5432/catalog?sslmode=disable",
		"mysql":      "root:@tcp(localhost:3306)/catalog",
		"sqlite":     ":memory:",
		"sqlite3":    ":memory:",
	} {
		db, err := Open(dialect, dsn)
		require.NoError(t, err, dialect)
		db.Close()
	}
}

func TestOpenUnsupportedDialect(t *testing.T) {
	_, err := Open("oracle", "dsn")
	require.EqualError(t, err, "unsupported dialect: oracle")
}
