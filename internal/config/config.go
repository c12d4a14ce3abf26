package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	Addr      string `env:"ADDR" default:":8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	CORSOrigins        string `env:"CORS_ORIGINS" default:"*"`
	BodyLimitBytes     int    `env:"BODY_LIMIT_BYTES" default:"1048576"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" default:"0"`

	MaxLines       int    `env:"MAX_LINES" default:"0"`
	MaxInputBytes  int    `env:"MAX_INPUT_BYTES" default:"0"`
	TopWords       int    `env:"TOP_WORDS" default:"10"`
	LexiconFile    string `env:"LEXICON_FILE"`
	ExtraStopwords string `env:"EXTRA_STOPWORDS"`

	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" default:"10m"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("ADDR is required")
	}
	if c.BodyLimitBytes <= 0 {
		return errors.New("BODY_LIMIT_BYTES must be positive")
	}
	if c.TopWords <= 0 {
		return errors.New("TOP_WORDS must be positive")
	}
	if c.MaxLines < 0 {
		return errors.New("MAX_LINES must not be negative")
	}
	if c.MaxInputBytes < 0 {
		return errors.New("MAX_INPUT_BYTES must not be negative")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.RedisURL != "" && c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive when REDIS_URL is set")
	}
	return nil
}

// Origins splits CORS_ORIGINS on commas.
func (c *Config) Origins() []string {
	return splitList(c.CORSOrigins)
}

func (c *Config) Stopwords() []string {
	return splitList(c.ExtraStopwords)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
