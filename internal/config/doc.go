// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package config loads and validates the application configuration.

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Defaults from defaultConfig()
 2. A YAML file: $CONFIG_PATH, ./config.yaml, or /etc/sessionmap/config.yaml
 3. Environment variables (see envMappings)

Example config.yaml:

	server:
	  port: 5000
	data:
	  csv_dir: /data
	  log_pattern: "*.log"
	  logs_since: "2025-03-01"
	  engine: duckdb
	analytics:
	  top_n: 10
	  min_session_duration: 30s
	geoip:
	  enabled: true
	security:
	  cors_origins:
	    - https://dashboard.example.com

Environment Variables:
  - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
  - CSV_DIR, CSV_PATTERN, LOG_PATTERN, LOGS_SINCE, DATA_ENGINE
  - TOP_N, MIN_SESSION_DURATION, UNKNOWN_CATEGORY_LABEL, TOP_CATEGORIES,
    MIN_ONLINE_SESSION
  - GEOIP_ENABLED, GEOIP_BASE_URL, GEOIP_REQUESTS_PER_MIN, GEOIP_TIMEOUT,
    GEOIP_CACHE_SIZE, GEOIP_CACHE_TTL
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Validation uses go-playground/validator struct tags through
internal/validation, followed by cross-field checks in Validate.
*/
package config
