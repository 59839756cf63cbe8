// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package main

import (
	"testing"

	"github.com/tomtom215/sessionmap/internal/config"
	"github.com/tomtom215/sessionmap/internal/ingest"
)

func TestBuildSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     config.DataConfig
		wantName string
		wantErr  bool
	}{
		{name: "csv engine", data: config.DataConfig{CSVDir: "/data", Engine: "csv"}, wantName: "csv"},
		{name: "duckdb engine", data: config.DataConfig{CSVDir: "/data", Engine: "duckdb"}, wantName: "duckdb"},
		{name: "raw logs", data: config.DataConfig{CSVDir: "/data", Engine: "csv", LogPattern: "*.log"}, wantName: "multi"},
		{name: "unknown engine", data: config.DataConfig{CSVDir: "/data", Engine: "parquet"}, wantErr: true},
		{name: "bad logs_since", data: config.DataConfig{CSVDir: "/data", Engine: "csv", LogPattern: "*.log", LogsSince: "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Config{Data: tt.data}
			cfg.GeoIP.Enabled = true
			cfg.GeoIP.BaseURL = "http://127.0.0.1:1"

			src, err := buildSource(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if src.Name() != tt.wantName {
				t.Errorf("expected source %q, got %q", tt.wantName, src.Name())
			}
			if multi, ok := src.(ingest.Multi); ok {
				if len(multi) != 2 {
					t.Errorf("expected csv and log sources, got %d", len(multi))
				}
				logs, ok := multi[1].(*ingest.LogSource)
				if !ok || logs.Geo == nil {
					t.Error("expected log source with a geo resolver")
				}
			}
		})
	}
}
