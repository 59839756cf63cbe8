// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package middleware provides HTTP instrumentation shared by the API routes.

PrometheusMetrics wraps a handler and records api_requests_total,
api_request_duration_seconds and api_active_requests. It is written against
http.HandlerFunc and adapted to chi's func(http.Handler) http.Handler shape
by the api package:

	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Get("/sessions/summary", h.SessionsSummary)
	})

The endpoint label is the chi route pattern ("/api/v1/graph"), never the raw
URL, so arbitrary query strings cannot create new series.
*/
package middleware
