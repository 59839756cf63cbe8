// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

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

	"github.com/tomtom215/sessionmap/internal/sessions"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/sessionmap/config.yaml",
	"/etc/sessionmap/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			CSVDir:     "/data",
			CSVPattern: "*.csv",
			Engine:     "csv",
		},
		Analytics: AnalyticsConfig{
			TopN:                 sessions.DefaultTopN,
			MinSessionDuration:   sessions.DefaultMinSessionDuration,
			UnknownCategoryLabel: sessions.DefaultUnknownCategory,
			TopCategories:        sessions.DefaultTopCategories,
			MinOnlineSession:     sessions.DefaultMinOnlineSession,
		},
		GeoIP: GeoIPConfig{
			Enabled:           false,
			BaseURL:           "http://ip-api.com",
			RequestsPerMinute: 45, // ip-api.com free tier limit
			Timeout:           10 * time.Second,
			CacheSize:         10000,
			CacheTTL:          24 * time.Hour,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from three layers, later layers winning:
//
//  1. Built-in defaults
//  2. Optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment variables listed in envMappings
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
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

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}

		var parts []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps supported environment variables to config paths. Other
// variables are ignored so the process environment cannot pollute config.
var envMappings = map[string]string{
	"http_host":               "server.host",
	"http_port":               "server.port",
	"http_timeout":            "server.timeout",
	"shutdown_timeout":        "server.shutdown_timeout",
	"csv_dir":                 "data.csv_dir",
	"csv_pattern":             "data.csv_pattern",
	"log_pattern":             "data.log_pattern",
	"logs_since":              "data.logs_since",
	"data_engine":             "data.engine",
	"top_n":                   "analytics.top_n",
	"min_session_duration":    "analytics.min_session_duration",
	"unknown_category_label":  "analytics.unknown_category_label",
	"top_categories":          "analytics.top_categories",
	"min_online_session":      "analytics.min_online_session",
	"geoip_enabled":           "geoip.enabled",
	"geoip_base_url":          "geoip.base_url",
	"geoip_requests_per_min":  "geoip.requests_per_minute",
	"geoip_timeout":           "geoip.timeout",
	"geoip_cache_size":        "geoip.cache_size",
	"geoip_cache_ttl":         "geoip.cache_ttl",
	"cors_origins":            "security.cors_origins",
	"rate_limit_requests":     "security.rate_limit_reqs",
	"rate_limit_window":       "security.rate_limit_window",
	"disable_rate_limit":      "security.rate_limit_disabled",
	"log_level":               "logging.level",
	"log_format":              "logging.format",
	"log_caller":              "logging.caller",
}

// envTransformFunc maps CSV_DIR to data.csv_dir and so on; unmapped variables
// return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
