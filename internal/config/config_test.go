package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "tm123admin", cfg.Admin.Password)
	assert.Equal(t, 8*time.Hour, cfg.Auth.AccessTokenTTL())
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SEED_ON_START", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "owner", cfg.Admin.Username)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.False(t, cfg.Seed.OnStart)
}

func TestLoadLoggerFollowsApp(t *testing.T) {
	t.Setenv("APP_NAME", "site-api-staging")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "site-api-staging", cfg.Logger.Service)
	assert.False(t, cfg.Logger.Development)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	require.Error(t, err)
}
