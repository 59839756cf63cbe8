// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Ingestion Metrics
	IngestEventsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_events_loaded_total",
			Help: "Total number of connection events loaded",
		},
		[]string{"source"}, // "csv", "duckdb", "log"
	)

	IngestRowsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_rows_rejected_total",
			Help: "Total number of input rows rejected during ingestion",
		},
		[]string{"source", "reason"},
	)

	IngestLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_load_duration_seconds",
			Help:    "Duration of a full event load in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// Analytics Metrics
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Duration of session aggregation passes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	SessionsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_closed_total",
			Help: "Total number of closed sessions reconstructed",
		},
	)

	SessionAnomalies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_anomalies_total",
			Help: "Total number of sessions dropped as invalid",
		},
		[]string{"kind"},
	)

	// GeoIP Metrics
	GeoIPLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoip_lookups_total",
			Help: "Total number of IP geolocation lookups",
		},
		[]string{"result"}, // "success", "failure", "private", "rate_limited"
	)

	GeoIPLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geoip_lookup_duration_seconds",
			Help:    "Duration of IP geolocation API calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIngestLoad records a completed load from one source.
func RecordIngestLoad(source string, events int, duration time.Duration) {
	IngestEventsLoaded.WithLabelValues(source).Add(float64(events))
	IngestLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordIngestRejected records a skipped input row.
func RecordIngestRejected(source, reason string) {
	IngestRowsRejected.WithLabelValues(source, reason).Inc()
}

// RecordAggregation records one analytics pass and the sessions it closed.
func RecordAggregation(operation string, sessionsClosed int, duration time.Duration) {
	AggregationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	SessionsClosed.Add(float64(sessionsClosed))
}

// RecordSessionAnomaly records a session dropped as invalid.
func RecordSessionAnomaly(kind string) {
	SessionAnomalies.WithLabelValues(kind).Inc()
}

// RecordGeoIPLookup records a geolocation lookup outcome. duration is only
// observed for lookups that reached the remote API.
func RecordGeoIPLookup(result string, duration time.Duration) {
	GeoIPLookups.WithLabelValues(result).Inc()
	if duration > 0 {
		GeoIPLookupDuration.Observe(duration.Seconds())
	}
}
