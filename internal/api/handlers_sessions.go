// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/sessionmap/internal/metrics"
	"github.com/tomtom215/sessionmap/internal/models"
	"github.com/tomtom215/sessionmap/internal/sessions"
)

const errLoadEvents = "Failed to load session events"

// SessionsSummary returns the full aggregation result.
//
// GET /api/v1/sessions/summary?top_n=10&min_duration=30
func (h *Handler) SessionsSummary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, verr := parseAnalyticsQuery(r)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	result, _, err := h.aggregate(r.Context(), "summary", h.sessionOptions(r.Context(), q))
	if err != nil {
		rw.InternalError(errLoadEvents, err)
		return
	}
	rw.Success(result)
}

// Graph serves one chart selected by the type parameter.
//
// GET /api/v1/graph?type=top-time-spent|top-country|country-sessions|online-statistics
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, verr := parseGraphQuery(r)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	graph := models.GraphType(q.Type)
	opts := h.sessionOptions(r.Context(), q.AnalyticsQuery)
	result, events, err := h.aggregate(r.Context(), graph.String(), opts)
	if err != nil {
		rw.InternalError(errLoadEvents, err)
		return
	}

	switch graph {
	case models.GraphTopTimeSpent:
		rw.Success(topTimeSpentChart(result.RankedTopN))
	case models.GraphCountrySessions:
		rw.Success(categoryCountChart(result.SessionCountByCategory))
	case models.GraphTopCountry:
		start := time.Now()
		shares := sessions.CategoryShare(events, h.analytics.TopCategories, opts.UnknownCategory)
		metrics.RecordAggregation("category_share", 0, time.Since(start))
		rw.Success(shares)
	case models.GraphOnlineStatistics:
		start := time.Now()
		stats := sessions.HourlyConcurrency(events, opts, h.now())
		metrics.RecordAggregation("hourly_concurrency", 0, time.Since(start))
		rw.Success(stats)
	default:
		rw.BadRequest("Unsupported graph type: " + q.Type)
	}
}

// TopTimeSpentPlayers is the dashboard's bar chart of the longest-playing
// identities.
//
// GET /graph/top-time-spent-players
func (h *Handler) TopTimeSpentPlayers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, verr := parseAnalyticsQuery(r)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	result, _, err := h.aggregate(r.Context(), "top_time_spent_players", h.sessionOptions(r.Context(), q))
	if err != nil {
		rw.InternalError(errLoadEvents, err)
		return
	}
	rw.Success(topTimeSpentChart(result.RankedTopN))
}

// TopCountriesConnected charts sessions longer than the threshold per
// country.
//
// GET /graph/top-counties-connected
func (h *Handler) TopCountriesConnected(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, verr := parseAnalyticsQuery(r)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	result, _, err := h.aggregate(r.Context(), "top_countries_connected", h.sessionOptions(r.Context(), q))
	if err != nil {
		rw.InternalError(errLoadEvents, err)
		return
	}
	rw.Success(categoryCountChart(result.SessionCountByCategory))
}
