package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a value unset. The store
// default is an in-memory database: nothing survives a restart unless an
// on-disk path is configured.
const (
	DefaultStoreDSN = ":memory:"
)

type Config struct {
	// StoreDSN is the SQLite location: ":memory:" or a *.db path/directory.
	StoreDSN string
	// CatalogPath optionally points at a TOML room preset. Empty means the
	// built-in catalog.
	CatalogPath string
}

// Load loads configuration from environment variables only.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from an optional .env file and environment variables.
func LoadWithFile(envFile string) (*Config, error) {
	// Attempt to load .env file if provided, but don't fail if it doesn't exist.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		StoreDSN:    getEnvOrDefault("HOTEL_STORE_DSN", DefaultStoreDSN),
		CatalogPath: os.Getenv("HOTEL_CATALOG_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.StoreDSN == "" {
		return fmt.Errorf("HOTEL_STORE_DSN must not be empty")
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("HOTEL_CATALOG_PATH: %w", err)
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
