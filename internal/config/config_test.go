package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORE_DRIVER", "APP_MIGRATE", "JWT_ACCESS_TTL", "RATE_RPS", "CORS_ORIGINS", "REDIS_URL", "AMQP_URL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "prod", cfg.Env, "dev shortcuts must be opted into")
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.False(t, cfg.Migrate)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 100, cfg.RateRPS)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "ledger_events", cfg.AMQPExchange)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("APP_MIGRATE", "true")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("RATE_RPS", "7")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.True(t, cfg.Migrate)
	assert.Equal(t, 5*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 7, cfg.RateRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("RATE_RPS", "lots")
	t.Setenv("JWT_REFRESH_TTL", "-1h")
	t.Setenv("APP_MIGRATE", "maybe")

	cfg := Load()
	assert.Equal(t, 100, cfg.RateRPS)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTTL)
	assert.False(t, cfg.Migrate)
}

func TestValidate(t *testing.T) {
	for _, k := range []string{"APP_ENV", "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Error(t, cfg.Validate(), "placeholder secrets outside dev")

	cfg.Env = "dev"
	require.NoError(t, cfg.Validate())

	cfg.Env = "prod"
	cfg.JWTAccessSecret, cfg.JWTRefreshSecret = "s3cret-a", "s3cret-a"
	require.Error(t, cfg.Validate())

	cfg.JWTRefreshSecret = "s3cret-r"
	require.NoError(t, cfg.Validate())
}
