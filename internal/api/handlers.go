// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package api

import (
	"context"
	"time"

	"github.com/tomtom215/sessionmap/internal/config"
	"github.com/tomtom215/sessionmap/internal/ingest"
	"github.com/tomtom215/sessionmap/internal/logging"
	"github.com/tomtom215/sessionmap/internal/metrics"
	"github.com/tomtom215/sessionmap/internal/models"
	"github.com/tomtom215/sessionmap/internal/sessions"
)

const (
	// readyTimeout bounds the event load done by the readiness probe.
	readyTimeout = 10 * time.Second

	// defaultLoadTimeout bounds the event load of an analytics request.
	defaultLoadTimeout = 30 * time.Second
)

// Handler serves the analytics endpoints. Every request loads events from
// the source and aggregates them from scratch; nothing is cached between
// requests.
type Handler struct {
	source      ingest.Source
	analytics   config.AnalyticsConfig
	loadTimeout time.Duration
	startTime   time.Time
	now         func() time.Time
}

// NewHandler creates a handler over source.
func NewHandler(source ingest.Source, analytics config.AnalyticsConfig) *Handler {
	return &Handler{
		source:      source,
		analytics:   analytics,
		loadTimeout: defaultLoadTimeout,
		startTime:   time.Now(),
		now:         time.Now,
	}
}

// SetLoadTimeout bounds how long one request may spend loading events.
// Non-positive values keep the default.
func (h *Handler) SetLoadTimeout(d time.Duration) {
	if d > 0 {
		h.loadTimeout = d
	}
}

// sessionOptions applies per-request overrides on top of the configured
// analytics settings and reports anomalies to logs and metrics.
func (h *Handler) sessionOptions(ctx context.Context, q AnalyticsQuery) sessions.Options {
	opts := h.analytics.SessionOptions()
	if q.TopN != nil {
		opts.TopN = *q.TopN
	}
	if q.MinDuration != nil {
		opts.MinSessionDuration = time.Duration(*q.MinDuration) * time.Second
	}
	opts.OnAnomaly = func(a sessions.Anomaly) {
		metrics.RecordSessionAnomaly(a.Kind)
		logging.Ctx(ctx).Warn().
			Str("kind", a.Kind).
			Str("identity", a.Identity).
			Time("start", a.Start).
			Time("end", a.End).
			Float64("duration", a.Duration).
			Msg("Dropped session")
	}
	return opts
}

// aggregate loads events and runs the session aggregation, timing it under
// operation.
func (h *Handler) aggregate(ctx context.Context, operation string, opts sessions.Options) (models.AggregateResult, []models.Event, error) {
	loadCtx, cancel := context.WithTimeout(ctx, h.loadTimeout)
	defer cancel()

	events, err := h.source.Load(loadCtx)
	if err != nil {
		return models.AggregateResult{}, nil, err
	}

	start := time.Now()
	result, closed := sessions.AggregateCount(events, opts)
	metrics.RecordAggregation(operation, closed, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("operation", operation).
		Int("events", len(events)).
		Int("sessions", closed).
		Int("identities", len(result.TotalDurationByIdentity)).
		Msg("Aggregated sessions")
	return result, events, nil
}
