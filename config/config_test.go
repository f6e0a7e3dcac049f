package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "", cfg.App.Port)
	assert.Equal(t, 60*24*7, cfg.JWT.AccessTokenExpiryMinutes)
	assert.Equal(t, 30, cfg.Redis.CacheTTLSeconds)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "kickoff")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DSN(), "dbname=kickoff")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"JWT_ACCESS_TOKEN_EXPIRY_MINUTES": "soon",
		"REDIS_DB":                        "zero",
		"MATCH_CACHE_TTL_SECONDS":         "1m",
		"METRICS_ENABLED":                 "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
