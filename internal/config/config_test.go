package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundboard/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.Equal(t, domain.DefaultWindow(), cfg.Dataset.Window())
	assert.False(t, cfg.Dataset.DonorsFollowFilter)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoadOverrides(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("DATASET_WINDOW_START", "2024-06-01")
	t.Setenv("DATASET_WINDOW_END", "2024-06-30")
	t.Setenv("DATASET_DONORS_FOLLOW_FILTER", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, int64(7), cfg.Dataset.Seed)
	assert.Equal(t, 29, cfg.Dataset.Window().Days())
	assert.True(t, cfg.Dataset.DonorsFollowFilter)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsInvertedWindow(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("DATASET_WINDOW_START", "2025-08-01")
	t.Setenv("DATASET_WINDOW_END", "2025-07-01")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformedDate(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("DATASET_WINDOW_START", "January 1st")

	_, err := Load()
	assert.Error(t, err)
}
