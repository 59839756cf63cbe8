// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

// Command server runs the sessionmap HTTP API.
//
// Startup order:
//
//  1. Configuration: defaults, optional config.yaml, environment (koanf)
//  2. Logging: zerolog with the configured level and format
//  3. Event sources: CSV (encoding/csv or DuckDB) plus optional raw logs
//     with GeoIP country lookups
//  4. HTTP: chi router under a suture supervisor tree
//
// Every API request re-reads the data directory, so new CSV files show up
// without a restart.
//
// # Example
//
//	export CSV_DIR=/srv/gameserver/stats
//	export CORS_ORIGINS=https://dashboard.example.com
//	export LOG_PATTERN='*.log' GEOIP_ENABLED=true LOGS_SINCE=2025-01-01
//	./sessionmap
//
// SIGINT and SIGTERM stop the supervisor tree; in-flight requests get
// SHUTDOWN_TIMEOUT to complete.
package main
