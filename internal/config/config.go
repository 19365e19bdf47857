// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration, assembled from struct
// defaults, an optional YAML file, and environment variables.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Market   MarketConfig   `koanf:"market"`
	Cache    CacheConfig    `koanf:"cache"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Host is the bind address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout bounds request handling end to end.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests is the per-IP request budget per window.
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// RateLimitWindow is the rate limiting window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// DatabaseConfig holds the DuckDB reference store settings.
type DatabaseConfig struct {
	// Path is the database file path; ":memory:" runs without a file.
	Path string `koanf:"path"`

	// MaxMemory caps DuckDB memory use, e.g. "1GB".
	MaxMemory string `koanf:"max_memory"`

	// Threads sets DuckDB worker threads; 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`

	// SeedReferenceData loads the embedded zone, district, and
	// suitability seed rows into empty tables at startup.
	SeedReferenceData bool `koanf:"seed_reference_data"`
}

// LoggingConfig holds the zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// Caller includes file and line in events.
	Caller bool `koanf:"caller"`
}

// MarketConfig holds the market data provider settings. When RemoteEnabled
// is false the static price tables serve every request.
type MarketConfig struct {
	// RemoteEnabled turns the AGMARKNET-style remote client on.
	RemoteEnabled bool `koanf:"remote_enabled"`

	// BaseURL is the remote price API root.
	BaseURL string `koanf:"base_url"`

	// APIKey authenticates against the remote API.
	APIKey string `koanf:"api_key"`

	// TimeoutSeconds bounds one remote request.
	TimeoutSeconds int `koanf:"timeout_seconds"`

	// RequestsPerMinute caps the outbound request rate.
	RequestsPerMinute int `koanf:"requests_per_minute"`
}

// CacheConfig holds the recommendation response cache settings.
type CacheConfig struct {
	// Enabled turns response caching on.
	Enabled bool `koanf:"enabled"`

	// TTL is how long a cached response stays fresh.
	TTL time.Duration `koanf:"ttl"`
}

// Validate checks the configuration for values that cannot work at all.
// It is called after every load, before the config reaches any component.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Market.RemoteEnabled && c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required when market.remote_enabled is true")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache.enabled is true, got %s", c.Cache.TTL)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
