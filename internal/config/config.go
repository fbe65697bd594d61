package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the wallet snapshot
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Generator configuration
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string
	RequestTimeout   time.Duration

	// Persistence
	DataDir     string
	StorageType string

	// Optional history mirror, disabled when URL is empty
	ElasticsearchURL      string
	ElasticsearchIndex    string
	ElasticsearchUsername string
	ElasticsearchPassword string

	// Economy
	DailyBonus int64

	LogLevel string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	timeout, err := time.ParseDuration(getEnvWithDefault("REQUEST_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	bonus, err := strconv.ParseInt(getEnvWithDefault("DAILY_BONUS", "10"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_BONUS: %w", err)
	}

	cfg := &Config{
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiImageModel:      getEnvWithDefault("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		RequestTimeout:        timeout,
		DataDir:               getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		StorageType:           getEnvWithDefault("STORAGE_TYPE", StorageFile),
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchIndex:    getEnvWithDefault("ELASTICSEARCH_INDEX", "aetheria_history"),
		ElasticsearchUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		DailyBonus:            bonus,
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded values are usable
func (c *Config) Validate() error {
	if c.StorageType != StorageFile && c.StorageType != StorageSQLite {
		return fmt.Errorf("STORAGE_TYPE must be %q or %q, got %q", StorageFile, StorageSQLite, c.StorageType)
	}
	if c.DailyBonus <= 0 {
		return fmt.Errorf("DAILY_BONUS must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// RequireGenerator reports whether generation commands can run
func (c *Config) RequireGenerator() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// WalletPath is where the file backend keeps the wallet snapshot
func (c *Config) WalletPath() string {
	return filepath.Join(c.DataDir, "aetheria_user.json")
}

// DatabasePath is where the sqlite backend keeps the wallet snapshot
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "aetheria.db")
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
