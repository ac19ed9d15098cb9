package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.OriginPatterns)
	assert.Equal(t, 5*time.Minute, cfg.WSIdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverridesDotenv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(dotenv, []byte("ADDR=:9000\nLOG_LEVEL=debug\nWS_ORIGIN_PATTERNS=localhost:*,example.com\n"), 0o600))

	t.Setenv("ADDR", ":7000")
	// Setenv registers a restore; unsetting then lets the dotenv value through
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("WS_ORIGIN_PATTERNS", "")
	os.Unsetenv("WS_ORIGIN_PATTERNS")

	cfg, err := Load(dotenv)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"localhost:*", "example.com"}, cfg.OriginPatterns)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
