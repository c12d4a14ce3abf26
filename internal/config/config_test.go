package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.Origins())
	assert.Equal(t, 1<<20, cfg.BodyLimitBytes)
	assert.Equal(t, 10, cfg.TopWords)
	assert.Zero(t, cfg.MaxLines)
	assert.Zero(t, cfg.MaxInputBytes)
	assert.Zero(t, cfg.RateLimitPerMinute)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Nil(t, cfg.Stopwords())
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("EXTRA_STOPWORDS", "loja,app")
	t.Setenv("TOP_WORDS", "5")
	t.Setenv("MAX_INPUT_BYTES", "4096")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
	assert.Equal(t, []string{"loja", "app"}, cfg.Stopwords())
	assert.Equal(t, 5, cfg.TopWords)
	assert.Equal(t, 4096, cfg.MaxInputBytes)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"log level", "LOG_LEVEL", "trace", "LOG_LEVEL must be one of"},
		{"log format", "LOG_FORMAT", "xml", "LOG_FORMAT must be text or json"},
		{"body limit", "BODY_LIMIT_BYTES", "0", "BODY_LIMIT_BYTES must be positive"},
		{"top words", "TOP_WORDS", "0", "TOP_WORDS must be positive"},
		{"max lines", "MAX_LINES", "-1", "MAX_LINES must not be negative"},
		{"max input bytes", "MAX_INPUT_BYTES", "-1", "MAX_INPUT_BYTES must not be negative"},
		{"rate limit", "RATE_LIMIT_PER_MINUTE", "-5", "RATE_LIMIT_PER_MINUTE must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CacheTTLWithRedis(t *testing.T) {
	cfg := Config{
		Addr: ":8080", LogLevel: "info", LogFormat: "text",
		BodyLimitBytes: 1, TopWords: 10,
		RedisURL: "redis://localhost:6379", CacheTTL: 0,
	}
	assert.ErrorContains(t, cfg.Validate(), "CACHE_TTL")

	cfg.RedisURL = ""
	assert.NoError(t, cfg.Validate())
}
