// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package main

import (
	"fmt"

	"github.com/tomtom215/sessionmap/internal/config"
	"github.com/tomtom215/sessionmap/internal/geoip"
	"github.com/tomtom215/sessionmap/internal/ingest"
	"github.com/tomtom215/sessionmap/internal/logging"
)

// buildSource assembles the event sources from the data and geoip sections.
// Parsed CSVs are always read; raw logs are added when a log pattern is set.
func buildSource(cfg *config.Config) (ingest.Source, error) {
	var csv ingest.Source
	switch cfg.Data.Engine {
	case "duckdb":
		csv = ingest.NewDuckDBSource(cfg.Data.CSVDir, cfg.Data.CSVPattern)
	case "csv", "":
		csv = ingest.NewCSVSource(cfg.Data.CSVDir, cfg.Data.CSVPattern)
	default:
		return nil, fmt.Errorf("unknown data engine %q", cfg.Data.Engine)
	}

	if cfg.Data.LogPattern == "" {
		return csv, nil
	}

	since, err := cfg.Data.LogsSinceTime()
	if err != nil {
		return nil, err
	}

	var geo ingest.GeoResolver
	if cfg.GeoIP.Enabled {
		geo = geoip.NewClient(geoip.Config{
			BaseURL:           cfg.GeoIP.BaseURL,
			RequestsPerMinute: cfg.GeoIP.RequestsPerMinute,
			Timeout:           cfg.GeoIP.Timeout,
			CacheSize:         cfg.GeoIP.CacheSize,
			CacheTTL:          cfg.GeoIP.CacheTTL,
		})
		logging.Info().
			Str("base_url", cfg.GeoIP.BaseURL).
			Int("requests_per_minute", cfg.GeoIP.RequestsPerMinute).
			Msg("GeoIP lookups enabled for raw logs")
	}

	logs := ingest.NewLogSource(cfg.Data.CSVDir, cfg.Data.LogPattern, since, geo)
	return ingest.Multi{csv, logs}, nil
}
