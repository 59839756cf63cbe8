// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/sessionmap/internal/logging"
	"github.com/tomtom215/sessionmap/internal/sessions"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	GeoIP     GeoIPConfig     `koanf:"geoip"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Address returns the listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the event files.
type DataConfig struct {
	// CSVDir holds the parsed connection CSVs and, optionally, raw server logs.
	CSVDir string `koanf:"csv_dir" validate:"required"`

	// CSVPattern is the glob matched inside CSVDir.
	CSVPattern string `koanf:"csv_pattern" validate:"required"`

	// LogPattern enables raw server log ingestion when non-empty.
	LogPattern string `koanf:"log_pattern"`

	// LogsSince drops raw log lines at or before this date (YYYY-MM-DD or
	// RFC3339). Empty keeps everything.
	LogsSince string `koanf:"logs_since"`

	// Engine is csv (encoding/csv) or duckdb (in-memory read_csv).
	Engine string `koanf:"engine" validate:"required,oneof=csv duckdb"`
}

// LogsSinceTime parses LogsSince. The zero time means no cutoff.
func (d DataConfig) LogsSinceTime() (time.Time, error) {
	if d.LogsSince == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, d.LogsSince); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("logs_since %q is not a date (YYYY-MM-DD) or RFC3339 timestamp", d.LogsSince)
}

// AnalyticsConfig tunes the session aggregation.
type AnalyticsConfig struct {
	TopN                 int           `koanf:"top_n" validate:"min=1,max=1000"`
	MinSessionDuration   time.Duration `koanf:"min_session_duration" validate:"gte=0"`
	UnknownCategoryLabel string        `koanf:"unknown_category_label" validate:"required"`
	TopCategories        int           `koanf:"top_categories" validate:"min=1,max=100"`
	MinOnlineSession     time.Duration `koanf:"min_online_session" validate:"gte=0"`
}

// SessionOptions converts the analytics settings into aggregation options.
func (a AnalyticsConfig) SessionOptions() sessions.Options {
	return sessions.Options{
		TopN:               a.TopN,
		MinSessionDuration: a.MinSessionDuration,
		UnknownCategory:    a.UnknownCategoryLabel,
		MinOnlineSession:   a.MinOnlineSession,
	}
}

// GeoIPConfig configures country lookups for raw log ingestion.
type GeoIPConfig struct {
	Enabled           bool          `koanf:"enabled"`
	BaseURL           string        `koanf:"base_url" validate:"required,url"`
	RequestsPerMinute int           `koanf:"requests_per_minute" validate:"min=1,max=10000"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	CacheSize         int           `koanf:"cache_size" validate:"min=1"`
	CacheTTL          time.Duration `koanf:"cache_ttl" validate:"gt=0"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LoggingSettings converts the logging section for logging.Init.
func (l LoggingConfig) LoggingSettings() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
