// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered with the default registry through promauto and
exposed by the API at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by httprate (counter)

Ingestion Metrics:
  - ingest_events_loaded_total: Events loaded per source (counter)
  - ingest_rows_rejected_total: Skipped rows (counter)
    Labels: source, reason (bad_timestamp, empty_identity, short_row,
    empty_action, stale)
  - ingest_load_duration_seconds: Full load latency (histogram)

Analytics Metrics:
  - aggregation_duration_seconds: Aggregation pass latency (histogram)
    Labels: operation (summary, top_time_spent, country_sessions,
    top_country, online_statistics)
  - sessions_closed_total: Reconstructed sessions (counter)
  - session_anomalies_total: Dropped sessions (counter)
    Labels: kind

GeoIP Metrics:
  - geoip_lookups_total: Lookups by result (counter)
  - geoip_lookup_duration_seconds: Remote API latency (histogram)
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Calls by result (counter)
  - circuit_breaker_state_transitions_total: State changes (counter)

# Usage

	start := time.Now()
	result := sessions.Aggregate(events, opts)
	metrics.RecordAggregation("summary", n, time.Since(start))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
