// Package config loads CLI settings from georm.yaml, the environment, and
// .env files.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the resolved CLI configuration.
type Config struct {
	SchemaPath  string
	OutputPath  string
	Dialect     string
	Package     string
	DatabaseURL string
}

// Load reads configuration from georm.yaml (current directory, home
// directory, or ~/.config/georm), GEORM_* environment variables, and .env
// files. Missing sources are not an error.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("georm")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(home)
	v.AddConfigPath(filepath.Join(home, ".config", "georm"))

	v.SetEnvPrefix("GEORM")
	v.AutomaticEnv()

	v.SetDefault("schema", "schema.georm")
	v.SetDefault("output", "./models")
	v.SetDefault("dialect", "postgres")
	v.SetDefault("package", "models")

	_ = v.ReadInConfig()

	// .env is loaded first, .env.local overrides it.
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	return &Config{
		SchemaPath:  v.GetString("schema"),
		OutputPath:  v.GetString("output"),
		Dialect:     v.GetString("dialect"),
		Package:     v.GetString("package"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}, nil
}

// Save writes the configuration to georm.yaml in dir.
func Save(dir string, cfg *Config) error {
	v := viper.New()
	v.SetFs(AppFs)
	v.Set("schema", cfg.SchemaPath)
	v.Set("output", cfg.OutputPath)
	v.Set("dialect", cfg.Dialect)
	v.Set("package", cfg.Package)

	return v.WriteConfigAs(filepath.Join(dir, "georm.yaml"))
}
