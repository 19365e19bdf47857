// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/kisansahayak/config.yaml",
	"/etc/kisansahayak/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied. Defaults load
// first and are overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8090,
			Timeout:           30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 120,
			RateLimitWindow:   time.Minute,
			Environment:       "development",
		},
		Database: DatabaseConfig{
			Path:              "/data/kisansahayak.duckdb",
			MaxMemory:         "1GB",
			Threads:           0, // 0 = runtime.NumCPU()
			SeedReferenceData: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Market: MarketConfig{
			RemoteEnabled:     false, // static price tables by default
			BaseURL:           "",
			APIKey:            "",
			TimeoutSeconds:    30,
			RequestsPerMinute: 60,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
	}
}

// Load builds the configuration from three layers:
//  1. struct defaults
//  2. optional YAML config file
//  3. environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices
// when they arrive from environment variables.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated env strings into slices for
// the known slice fields. YAML-sourced slices pass through untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envAliases maps short environment variable names onto config paths.
// Longer section-prefixed names (SERVER_PORT, MARKET_API_KEY, ...) are
// handled by envTransformFunc directly.
var envAliases = map[string]string{
	"DB_PATH":       "database.path",
	"DB_MAX_MEMORY": "database.max_memory",
	"DB_THREADS":    "database.threads",
	"DB_SEED":       "database.seed_reference_data",
	"HTTP_PORT":     "server.port",
	"HTTP_HOST":     "server.host",
	"LOG_LEVEL":     "logging.level",
	"LOG_FORMAT":    "logging.format",
	"ENVIRONMENT":   "server.environment",
}

// envSectionPrefixes maps environment variable prefixes onto config
// sections, e.g. SERVER_PORT -> server.port,
// MARKET_REMOTE_ENABLED -> market.remote_enabled.
var envSectionPrefixes = map[string]string{
	"SERVER_":   "server.",
	"DATABASE_": "database.",
	"LOGGING_":  "logging.",
	"MARKET_":   "market.",
	"CACHE_":    "cache.",
}

// envTransformFunc maps an environment variable name to a koanf config
// path. Unrecognized variables map to "" and are ignored.
func envTransformFunc(key string) string {
	if path, ok := envAliases[key]; ok {
		return path
	}
	for prefix, section := range envSectionPrefixes {
		if strings.HasPrefix(key, prefix) {
			return section + strings.ToLower(strings.TrimPrefix(key, prefix))
		}
	}
	return ""
}
