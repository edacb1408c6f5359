package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper to set env vars and clean up after
func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old := os.Getenv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if old == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, old)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, "PORT", "")
	setEnv(t, "SAFE_THRESHOLD", "")
	setEnv(t, "UNKNOWN_SCORE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultSafeThreshold, cfg.SafeThreshold)
	assert.Equal(t, DefaultUnknownScore, cfg.UnknownScore)
	assert.Equal(t, DefaultListLimit, cfg.ListLimit)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, "PORT", "9090")
	setEnv(t, "ENV", "production")
	setEnv(t, "SAFE_THRESHOLD", "60")
	setEnv(t, "ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 60, cfg.SafeThreshold)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	setEnv(t, "SAFE_THRESHOLD", "150")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SAFE_THRESHOLD")
}

func TestLoad_InvalidUnknownScore(t *testing.T) {
	// 0 and 100 are reserved for the blacklist/whitelist short-circuits
	setEnv(t, "SAFE_THRESHOLD", "40")
	setEnv(t, "UNKNOWN_SCORE", "100")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_SCORE")
}
