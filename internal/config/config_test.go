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

	assert.Equal(t, "http://localhost:44300/api", cfg.APIUrl)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 3*time.Second, cfg.SuccessTTL)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_URL", "http://api.internal:9000")
	t.Setenv("API_TIMEOUT", "2s")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal:9000", cfg.APIUrl)
	assert.Equal(t, 2*time.Second, cfg.APITimeout)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestValidate(t *testing.T) {
	base := Config{
		Env:              "development",
		APIUrl:           "http://localhost",
		APITimeout:       time.Second,
		SessionSecret:    "changeme",
		SessionCacheSize: 10,
		RateLimitRPS:     5,
		RateLimitBurst:   10,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing api url", func(c *Config) { c.APIUrl = "" }, true},
		{"zero timeout", func(c *Config) { c.APITimeout = 0 }, true},
		{"zero cache", func(c *Config) { c.SessionCacheSize = 0 }, true},
		{"zero rate", func(c *Config) { c.RateLimitRPS = 0 }, true},
		{"negative rate", func(c *Config) { c.RateLimitRPS = -1 }, true},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, true},
		{"default secret in production", func(c *Config) { c.Env = "production" }, true},
		{"custom secret in production", func(c *Config) {
			c.Env = "production"
			c.SessionSecret = "s3cret"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
