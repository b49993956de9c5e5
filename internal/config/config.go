// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Amadeus     AmadeusConfig
	GoogleMaps  GoogleMapsConfig
	Cache       CacheConfig
	Postgres    PostgresConfig
	Kafka       KafkaConfig
	Aggregation AggregationConfig
	RateLimit   RateLimitConfig
	Logging     LoggingConfig
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// AmadeusConfig holds the offer-oracle credentials and endpoints.
type AmadeusConfig struct {
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"30s"`

	// FlushBeforeFetch drops the offer cache ahead of every search.
	FlushBeforeFetch bool `env:"AMADEUS_FLUSH_BEFORE_FETCH" envDefault:"false"`
}

// GoogleMapsConfig holds the transit-oracle settings.
type GoogleMapsConfig struct {
	BaseURL string        `env:"GOOGLE_MAPS_BASE_URL" envDefault:"https://maps.googleapis.com"`
	APIKey  string        `env:"GOOGLE_MAPS_API_KEY"`
	Timeout time.Duration `env:"GOOGLE_MAPS_TIMEOUT" envDefault:"10s"`
}

// CacheConfig selects and configures the offer-cache backend.
type CacheConfig struct {
	// Backend is one of: memory, redis, none.
	Backend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// PostgresConfig holds the booking-store connection settings.
type PostgresConfig struct {
	// DSN is the pgx connection string. Empty disables the booking store.
	DSN string `env:"POSTGRES_DSN"`
}

// KafkaConfig holds the booking event stream settings.
type KafkaConfig struct {
	// Brokers is a comma-separated broker list. Empty disables publication.
	Brokers string `env:"KAFKA_BROKERS"`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"booking-events"`
}

// BrokerList splits the configured brokers.
func (k KafkaConfig) BrokerList() []string {
	if k.Brokers == "" {
		return nil
	}
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

// AggregationConfig tunes the best-options pipeline.
type AggregationConfig struct {
	// TopK is how many ranked offers get transit enrichment.
	TopK int `env:"AGGREGATION_TOP_K" envDefault:"3"`
}

// RateLimitConfig sets the default per-oracle request budget.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	BurstSize         int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
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

	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}
	if cfg.GoogleMaps.Timeout <= 0 {
		return fmt.Errorf("GOOGLE_MAPS_TIMEOUT must be positive")
	}

	validBackends := map[string]bool{"memory": true, "redis": true, "none": true}
	if !validBackends[cfg.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis, none; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if cfg.Aggregation.TopK < 1 {
		return fmt.Errorf("AGGREGATION_TOP_K must be at least 1, got %d", cfg.Aggregation.TopK)
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if cfg.RateLimit.BurstSize < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
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
