package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mirela/brainplay/internal/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:                ":8080",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		WorksheetServiceURL: "http://localhost:8000",
		WorksheetTimeoutSec: 30,
		AccessCodeAttempts:  100,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:                "",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		WorksheetServiceURL: "http://localhost:8000",
		WorksheetTimeoutSec: 30,
		AccessCodeAttempts:  100,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := config.Config{
		Addr:                ":8080",
		DBPath:              "",
		LogLevel:            "INFO",
		WorksheetServiceURL: "http://localhost:8000",
		WorksheetTimeoutSec: 30,
		AccessCodeAttempts:  100,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_BadTimeout(t *testing.T) {
	cfg := config.Config{
		Addr:                ":8080",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		WorksheetServiceURL: "http://localhost:8000",
		WorksheetTimeoutSec: 0,
		AccessCodeAttempts:  100,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "WORKSHEET_TIMEOUT_SEC must be positive")
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("ADDR")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("WORKSHEET_SERVICE_URL")
	os.Unsetenv("WORKSHEET_TIMEOUT_SEC")
	os.Unsetenv("ACCESS_CODE_ATTEMPTS")

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:brainplay.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 30, cfg.WorksheetTimeoutSec)
	assert.Equal(t, 100, cfg.AccessCodeAttempts)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ACCESS_CODE_ATTEMPTS", "25")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 25, cfg.AccessCodeAttempts)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("WORKSHEET_TIMEOUT_SEC", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 30, cfg.WorksheetTimeoutSec)
}
