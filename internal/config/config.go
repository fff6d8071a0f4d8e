// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Search   SearchConfig
	Upstream UpstreamConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	Capacity int           `env:"CACHE_CAPACITY" envDefault:"100"`
}

// SearchConfig holds fan-out settings for search orchestration.
type SearchConfig struct {
	// MaxFanOut caps how many sub-queries one request may submit.
	MaxFanOut int `env:"SEARCH_MAX_FANOUT" envDefault:"62"`

	// MaxConcurrent caps how many upstream calls are in flight at once.
	MaxConcurrent int `env:"SEARCH_MAX_CONCURRENT" envDefault:"16"`
}

// UpstreamConfig holds settings for the upstream search API client.
type UpstreamConfig struct {
	BaseURL      string        `env:"UPSTREAM_BASE_URL" envDefault:"https://api.skypicker.com/umbrella/v2/graphql"`
	Timeout      time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	RetryMax     int           `env:"UPSTREAM_RETRY_MAX" envDefault:"3"`
	RetryInitial time.Duration `env:"UPSTREAM_RETRY_INITIAL_DELAY" envDefault:"200ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if cfg.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1, got %d", cfg.Cache.Capacity)
	}

	// The fan-out cap must admit the widest entry-point bound (the 62-day
	// calendar window), otherwise valid requests would be rejected.
	if cfg.Search.MaxFanOut < 62 {
		return fmt.Errorf("SEARCH_MAX_FANOUT must be at least 62, got %d", cfg.Search.MaxFanOut)
	}
	if cfg.Search.MaxConcurrent < 1 {
		return fmt.Errorf("SEARCH_MAX_CONCURRENT must be at least 1, got %d", cfg.Search.MaxConcurrent)
	}

	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must not be empty")
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if cfg.Upstream.RetryMax < 1 {
		return fmt.Errorf("UPSTREAM_RETRY_MAX must be at least 1, got %d", cfg.Upstream.RetryMax)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
