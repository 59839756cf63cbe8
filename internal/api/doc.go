// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package api serves the session analytics over HTTP with a chi router.

Routes:

	GET /health-check                     {"status":"healthy"}
	GET /api/v1/health/live               liveness
	GET /api/v1/health/ready              event source readable
	GET /api/v1/sessions/summary          full aggregation result
	GET /api/v1/graph?type=...            top-time-spent, top-country,
	                                      country-sessions, online-statistics
	GET /graph/top-time-spent-players     ranking chart
	GET /graph/top-counties-connected     per-country session chart
	GET /metrics                          Prometheus exposition

Summary and graph endpoints accept top_n (1..1000) and min_duration (seconds,
0..86400). Invalid parameters produce a 400 VALIDATION_FAILED envelope.

Every request loads events from the configured ingest.Source and aggregates
them from scratch, so the response always reflects the files on disk.

Responses other than /health-check and /metrics use the envelope

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "INTERNAL_ERROR", "message": "..."}, "meta": {...}}
*/
package api
