// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package models

// GraphType selects which dataset the graph endpoint returns.
type GraphType string

const (
	GraphTopTimeSpent     GraphType = "top-time-spent"
	GraphTopCountry       GraphType = "top-country"
	GraphCountrySessions  GraphType = "country-sessions"
	GraphOnlineStatistics GraphType = "online-statistics"
)

// GraphTypes lists every supported graph type in display order.
var GraphTypes = []GraphType{
	GraphTopTimeSpent,
	GraphTopCountry,
	GraphCountrySessions,
	GraphOnlineStatistics,
}

// IsValid reports whether the graph type is supported.
func (g GraphType) IsValid() bool {
	for _, t := range GraphTypes {
		if g == t {
			return true
		}
	}
	return false
}

func (g GraphType) String() string {
	return string(g)
}
