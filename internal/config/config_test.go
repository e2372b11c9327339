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

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.DataJud.CacheTTL)
	assert.False(t, cfg.DataJud.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("DATAJUD_API_KEY", "secret")
	t.Setenv("DATAJUD_TIMEOUT", "5")
	t.Setenv("DATAJUD_WORKERS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("TRIBUNAL_TABLE_PATH", "/etc/tribunais.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.DataJud.Enabled())
	assert.Equal(t, 5*time.Second, cfg.DataJud.Timeout)
	assert.Equal(t, 2, cfg.DataJud.Workers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORS.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "/etc/tribunais.json", cfg.Tribunal.TablePath)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative port", key: "PORT", value: "-1"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "zero rate", key: "RATE_LIMIT_RPM", value: "0"},
		{name: "zero batch", key: "MAX_BATCH_SIZE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
