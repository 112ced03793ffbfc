// Package config resolves the application configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Store backend names accepted in TRIPWISE_STORE.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config is the resolved application configuration.
type Config struct {
	// DataDir is where trip state lives (the JSONL file or the sqlite db).
	DataDir string
	// Store selects the persistence backend, "file" or "sqlite".
	Store string
	// RateAPIURL is the exchange-rate endpoint base URL; empty means the
	// provider's default.
	RateAPIURL string
	// RateAPIKey is the exchange-rate API key; empty selects the keyless
	// endpoint variant.
	RateAPIKey string
	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string
}

// Load resolves the configuration. A .env file in the working directory is
// read first when present; real environment variables win over it.
func Load() (Config, error) {
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}

	cfg := Config{
		DataDir:    getenv("TRIPWISE_DATA_DIR", defaultDataDir()),
		Store:      getenv("TRIPWISE_STORE", StoreFile),
		RateAPIURL: os.Getenv("TRIPWISE_RATE_API_URL"),
		RateAPIKey: os.Getenv("TRIPWISE_RATE_API_KEY"),
		LogLevel:   getenv("TRIPWISE_LOG_LEVEL", "info"),
	}
	if cfg.Store != StoreFile && cfg.Store != StoreSQLite {
		return Config{}, fmt.Errorf("TRIPWISE_STORE must be %q or %q, got %q", StoreFile, StoreSQLite, cfg.Store)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultDataDir is ~/.tripwise, falling back to the working directory when
// the home directory is unknown.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".tripwise")
}
