// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package models

// RankedEntry is one row of the top time spent ranking.
type RankedEntry struct {
	Identity string  `json:"identity"`
	Duration float64 `json:"duration"`
}

// AggregateResult holds everything produced by one aggregation pass.
//
// TotalDurationByIdentity is cumulative seconds across all closed sessions.
// RankedTopN is sorted by duration descending, ties broken by the order in
// which identities first closed a session. SessionCountByCategory only counts
// sessions strictly longer than the configured minimum duration.
type AggregateResult struct {
	TotalDurationByIdentity map[string]float64 `json:"total_duration_by_identity"`
	RankedTopN              []RankedEntry      `json:"ranked_top_n"`
	SessionCountByCategory  map[string]int     `json:"session_count_by_category"`
}

// CategoryShare is a category's percentage of all connections.
type CategoryShare struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// OnlineStatisticsHourUnit is the average number of concurrent players
// during one hour of the day (UTC).
type OnlineStatisticsHourUnit struct {
	Hour                   int     `json:"hour"`
	ConcurrentPlayersCount float64 `json:"concurrent_players_count"`
}

// OnlineStatistics is always 24 entries ordered by hour.
type OnlineStatistics []OnlineStatisticsHourUnit

// ChartData is the label/value form consumed by the dashboard charts.
// NoData is set when there is nothing to plot so the client can render its
// placeholder instead of an empty chart.
type ChartData struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	NoData bool      `json:"no_data"`
}
