// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/sessionmap/internal/logging"
)

// HealthCheck keeps the dashboard's original probe shape.
//
// GET /health-check
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// HealthLive returns 200 while the process is up, regardless of the event
// source.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 only when events can be loaded from the source.
// An empty data directory is ready: it is the normal "no data yet" state.
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	events, err := h.source.Load(ctx)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("source", h.source.Name()).Msg("Readiness check failed")
		rw.ServiceUnavailable("Event source is not readable")
		return
	}

	rw.Success(map[string]interface{}{
		"ready":  true,
		"source": h.source.Name(),
		"events": len(events),
	})
}
