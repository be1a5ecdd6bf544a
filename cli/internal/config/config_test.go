package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(".", name), []byte(content), 0o644))
}

// clearDatabaseURL unsets DATABASE_URL so the .env files under test are the
// only source. godotenv never overrides variables that are already set.
func clearDatabaseURL(t *testing.T) {
	t.Helper()
	old, had := os.LookupEnv("DATABASE_URL")
	os.Unsetenv("DATABASE_URL")
	t.Cleanup(func() {
		if had {
			os.Setenv("DATABASE_URL", old)
		} else {
			os.Unsetenv("DATABASE_URL")
		}
	})
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, &Config{
		SchemaPath: "catalog.georm",
		OutputPath: "./gen",
		Dialect:    "sqlite",
		Package:    "store",
	}))

	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "catalog.georm", cfg.SchemaPath)
	require.Equal(t, "./gen", cfg.OutputPath)
	require.Equal(t, "sqlite", cfg.Dialect)
	require.Equal(t, "store", cfg.Package)
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "schema.georm", cfg.SchemaPath)
	require.Equal(t, "./models", cfg.OutputPath)
	require.Equal(t, "postgres", cfg.Dialect)
	require.Equal(t, "models", cfg.Package)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEORM_DIALECT", "mysql")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mysql", cfg.Dialect)
}

func TestDatabaseURLFromDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	clearDatabaseURL(t)
	writeFile(t, ".env", "DATABASE_URL=postgres://localhost/catalog\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/catalog", cfg.DatabaseURL)
}

func TestDotEnvLocalWins(t *testing.T) {
	chdir(t, t.TempDir())
	clearDatabaseURL(t)
	writeFile(t, ".env", "DATABASE_URL=postgres://localhost/catalog\n")
	writeFile(t, ".env.local", "DATABASE_URL=postgres://localhost/local\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/local", cfg.DatabaseURL)
}
