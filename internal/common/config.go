package common

import (
	"os"
	"strconv"
	"time"

	"github.com/tdnguyen/sales-ledger/internal/export"
)

// Config holds all application configuration
type Config struct {
	Import ImportConfig
	Export ExportConfig
	Remote RemoteConfig
	Prefs  PrefsConfig
	Server ServerConfig
}

// ImportConfig holds spreadsheet import configuration
type ImportConfig struct {
	// HeaderRowOffset is the zero-indexed row of the header; the stock POS
	// export carries six title rows above it.
	HeaderRowOffset int
	// KeywordsFile optionally overrides the header keyword vocabulary.
	KeywordsFile string
}

// ExportConfig holds spreadsheet export configuration
type ExportConfig struct {
	Filename string
}

// RemoteConfig holds the remote persistence boundary configuration
type RemoteConfig struct {
	SaveURL string
	Timeout time.Duration
}

// PrefsConfig holds the local preference store configuration
type PrefsConfig struct {
	DBPath string
}

// ServerConfig holds the companion save-server configuration
type ServerConfig struct {
	Addr   string
	DBPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Import: ImportConfig{
			HeaderRowOffset: getEnvAsInt("SALES_HEADER_OFFSET", 6),
			KeywordsFile:    getEnv("SALES_KEYWORDS_FILE", ""),
		},
		Export: ExportConfig{
			Filename: getEnv("SALES_EXPORT_FILE", export.DefaultFilename),
		},
		Remote: RemoteConfig{
			SaveURL: getEnv("SALES_API_URL", "http://localhost:8080/api/sales"),
			Timeout: getEnvAsDuration("SALES_API_TIMEOUT", 30*time.Second),
		},
		Prefs: PrefsConfig{
			DBPath: getEnv("SALES_PREFS_DB", "prefs.db"),
		},
		Server: ServerConfig{
			Addr:   getEnv("SALES_ADDR", ":8080"),
			DBPath: getEnv("SALES_DB_PATH", "sales.db"),
		},
	}
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Import.HeaderRowOffset < 0 {
		return NewAppError("CONFIG_ERROR", "SALES_HEADER_OFFSET must not be negative", ErrInvalidInput)
	}
	if c.Export.Filename == "" {
		return NewAppError("CONFIG_ERROR", "SALES_EXPORT_FILE is required", ErrInvalidInput)
	}
	if c.Remote.SaveURL == "" {
		return NewAppError("CONFIG_ERROR", "SALES_API_URL is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "SALES_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
