package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ENV", "DATABASE_DSN", "JWT_SECRET", "JWT_EXPIRY",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "HASH_MAX_COUNT",
}

// clearEnv unsets every config key for the test. An empty value would
// override envDefault, so the keys are removed, not blanked.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("ENV", "staging")
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 10, cfg.HashMaxCount)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("HASH_MAX_COUNT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 3, cfg.HashMaxCount)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInsecureSecret)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Run("unparsable duration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRY", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero hash limit", func(t *testing.T) {
		t.Setenv("HASH_MAX_COUNT", "0")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidLimits)
	})
}
