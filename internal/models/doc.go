// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package models defines the data structures shared by the ingestion,
analytics and API layers.

Key Components:

  - Event: one connected or disconnected log entry for a player
  - ClosedSession: a paired connect/disconnect with its duration in seconds
  - AggregateResult: per-player totals, the top N ranking and per-country
    session counts produced by one aggregation pass
  - CategoryShare, OnlineStatistics: dashboard datasets
  - ChartData: label/value pairs served to the chart endpoints
  - Geolocation: the result of an IP address lookup
  - GraphType: the dataset selector accepted by the graph endpoint

Usage Example:

	ev := models.Event{
	    Identity:  "Alice",
	    Action:    models.ActionConnected,
	    Timestamp: time.Now(),
	    Category:  "Germany",
	}

All types are plain values with JSON tags; none of them carry behavior beyond
parsing and validation of enumerations.
*/
package models
