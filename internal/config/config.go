package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	Timezone   string `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`

	// Remote appointments API
	APIUrl     string        `env:"API_URL" envDefault:"http://localhost:44300/api"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	SessionSecret    string        `env:"SESSION_SECRET" envDefault:"changeme"`
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1000"`
	SuccessTTL       time.Duration `env:"SUCCESS_TTL" envDefault:"3s"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// Optional backends, disabled when empty
	RedisURL string `env:"REDIS_URL"`
	DBUrl    string `env:"DATABASE_URL"`
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIUrl == "" {
		return errors.New("API_URL is required")
	}
	if c.APITimeout <= 0 {
		return errors.New("API_TIMEOUT must be positive")
	}
	if c.SessionCacheSize <= 0 {
		return errors.New("SESSION_CACHE_SIZE must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_BURST must be positive")
	}
	if c.Env == "production" && c.SessionSecret == "changeme" {
		return errors.New("SESSION_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
