// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/tomtom215/sessionmap/internal/logging"
	"github.com/tomtom215/sessionmap/internal/metrics"
	"github.com/tomtom215/sessionmap/internal/models"
)

// Rejection reasons reported on ingest_rows_rejected_total.
const (
	ReasonBadTimestamp  = "bad_timestamp"
	ReasonEmptyIdentity = "empty_identity"
	ReasonShortRow      = "short_row"
	ReasonEmptyAction   = "empty_action"
)

// ErrNoHeader is returned when a CSV file lacks one of the required columns.
var ErrNoHeader = errors.New("missing required CSV header")

// Source loads connection events.
//
// A missing data directory is not an error: it yields an empty slice, which
// analytics treats as "no data yet".
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Event, error)
}

// Stats counts what one Load call saw.
type Stats struct {
	Files    int
	Loaded   int
	Rejected map[string]int
}

func newStats() *Stats {
	return &Stats{Rejected: make(map[string]int)}
}

func (s *Stats) reject(source, reason string) {
	s.Rejected[reason]++
	metrics.RecordIngestRejected(source, reason)
}

func (s *Stats) log(ctx context.Context, source string, took time.Duration) {
	metrics.RecordIngestLoad(source, s.Loaded, took)

	event := logging.Ctx(ctx).Info()
	if len(s.Rejected) > 0 {
		event = logging.Ctx(ctx).Warn().Interface("rejected", s.Rejected)
	}
	event.
		Str("source", source).
		Int("files", s.Files).
		Int("events", s.Loaded).
		Dur("took", took).
		Msg("Loaded events")
}

// matchFiles returns the files in dir matching pattern, in lexical order.
// A missing directory yields no files.
func matchFiles(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	slices.Sort(files)
	return files, nil
}

// Multi merges several sources into one time-ordered slice.
type Multi []Source

// Name implements Source.
func (m Multi) Name() string {
	return "multi"
}

// Load implements Source. The first failing source aborts the load.
func (m Multi) Load(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	for _, src := range m {
		loaded, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s source: %w", src.Name(), err)
		}
		events = append(events, loaded...)
	}
	if events == nil {
		return []models.Event{}, nil
	}

	slices.SortStableFunc(events, func(a, b models.Event) int {
		return cmp.Compare(a.Timestamp.UnixNano(), b.Timestamp.UnixNano())
	})
	return events, nil
}
