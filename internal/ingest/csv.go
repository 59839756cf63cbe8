// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tomtom215/sessionmap/internal/logging"
	"github.com/tomtom215/sessionmap/internal/models"
)

// CSVSource reads every file matching Pattern inside Dir with encoding/csv.
type CSVSource struct {
	Dir     string
	Pattern string
}

// NewCSVSource creates a CSV source. An empty pattern means "*.csv".
func NewCSVSource(dir, pattern string) *CSVSource {
	if pattern == "" {
		pattern = "*.csv"
	}
	return &CSVSource{Dir: dir, Pattern: pattern}
}

// Name implements Source.
func (s *CSVSource) Name() string {
	return "csv"
}

// Load implements Source. Files are read in lexical order and concatenated.
func (s *CSVSource) Load(ctx context.Context) ([]models.Event, error) {
	start := time.Now()
	files, err := matchFiles(s.Dir, s.Pattern)
	if err != nil {
		return nil, err
	}

	stats := newStats()
	events := make([]models.Event, 0)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		events, err = s.readFile(ctx, path, events, stats)
		if err != nil {
			return nil, err
		}
		stats.Files++
	}

	stats.Loaded = len(events)
	stats.log(ctx, s.Name(), time.Since(start))
	return events, nil
}

func (s *CSVSource) readFile(ctx context.Context, path string, events []models.Event, stats *Stats) ([]models.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return events, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	cols, err := newColumnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		event, reason := cols.toEvent(row)
		if reason != "" {
			stats.reject(s.Name(), reason)
			logging.Ctx(ctx).Warn().
				Str("file", path).
				Int("line", line).
				Str("reason", reason).
				Msg("Skipping CSV row")
			continue
		}
		events = append(events, event)
	}
}
