package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "contest", cfg.DatabaseName)
	assert.Equal(t, 12, cfg.JWTExpiryHours)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Nil(t, cfg.Deadline())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "contest_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "contest_test", cfg.DatabaseName)
	assert.Contains(t, cfg.DatabaseURL, "contest_test")
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestRegistrationDeadline(t *testing.T) {
	t.Setenv("REGISTRATION_DEADLINE", "not-a-timestamp")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("REGISTRATION_DEADLINE", "2026-10-01T18:00:00Z")
	cfg, err := Load()
	require.NoError(t, err)

	deadline := cfg.Deadline()
	require.NotNil(t, deadline)
	assert.Equal(t, time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC), deadline.UTC())
}
