package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	WorksheetServiceURL string
	WorksheetTimeoutSec int
	AccessCodeAttempts  int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:brainplay.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		WorksheetServiceURL: envOr("WORKSHEET_SERVICE_URL", "http://localhost:8000"),
		WorksheetTimeoutSec: envIntOr("WORKSHEET_TIMEOUT_SEC", 30),
		AccessCodeAttempts:  envIntOr("ACCESS_CODE_ATTEMPTS", 100),
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.WorksheetServiceURL == "" {
		return fmt.Errorf("WORKSHEET_SERVICE_URL cannot be empty")
	}
	if c.WorksheetTimeoutSec <= 0 {
		return fmt.Errorf("WORKSHEET_TIMEOUT_SEC must be positive")
	}
	if c.AccessCodeAttempts <= 0 {
		return fmt.Errorf("ACCESS_CODE_ATTEMPTS must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
