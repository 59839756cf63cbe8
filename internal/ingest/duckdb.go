// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	// DuckDB driver - in-memory read_csv engine for the connection CSVs
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/sessionmap/internal/logging"
	"github.com/tomtom215/sessionmap/internal/models"
)

const duckdbReadCSV = `SELECT * FROM read_csv(?, header = true, all_varchar = true, union_by_name = true)`

// DuckDBSource reads the same files as CSVSource through DuckDB's CSV
// reader. Nothing is persisted: the database lives in memory for one Load.
type DuckDBSource struct {
	Dir     string
	Pattern string
}

// NewDuckDBSource creates a DuckDB-backed CSV source.
func NewDuckDBSource(dir, pattern string) *DuckDBSource {
	if pattern == "" {
		pattern = "*.csv"
	}
	return &DuckDBSource{Dir: dir, Pattern: pattern}
}

// Name implements Source.
func (s *DuckDBSource) Name() string {
	return "duckdb"
}

// Load implements Source.
func (s *DuckDBSource) Load(ctx context.Context) ([]models.Event, error) {
	start := time.Now()
	files, err := matchFiles(s.Dir, s.Pattern)
	if err != nil {
		return nil, err
	}
	events := make([]models.Event, 0)
	if len(files) == 0 {
		return events, nil
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}
	defer db.Close()

	stats := newStats()
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.Size() == 0 {
			continue
		}
		events, err = s.readFile(ctx, db, path, events, stats)
		if err != nil {
			return nil, err
		}
		stats.Files++
	}

	stats.Loaded = len(events)
	stats.log(ctx, s.Name(), time.Since(start))
	return events, nil
}

func (s *DuckDBSource) readFile(ctx context.Context, db *sql.DB, path string, events []models.Event, stats *Stats) ([]models.Event, error) {
	rows, err := db.QueryContext(ctx, duckdbReadCSV, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", path, err)
	}
	cols, err := newColumnIndex(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	raw := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range raw {
		dest[i] = &raw[i]
	}
	row := make([]string, len(names))

	line := 1
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
		for i, v := range raw {
			row[i] = v.String
		}

		event, reason := cols.toEvent(row)
		if reason != "" {
			stats.reject(s.Name(), reason)
			logging.Ctx(ctx).Warn().
				Str("file", path).
				Int("row", line).
				Str("reason", reason).
				Msg("Skipping CSV row")
			continue
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return events, nil
}
