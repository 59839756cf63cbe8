// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"cmp"
	"maps"
	"slices"

	"github.com/tomtom215/sessionmap/internal/models"
)

// DurationAggregator sums closed session durations per identity and ranks
// identities by their total.
//
// Identities are remembered in the order they first close a session; that
// order breaks ties in TopN so the ranking never depends on map iteration.
type DurationAggregator struct {
	totals map[string]float64
	order  []string
}

// NewDurationAggregator creates an empty aggregator.
func NewDurationAggregator() *DurationAggregator {
	return &DurationAggregator{
		totals: make(map[string]float64),
	}
}

// Add accumulates the session duration for its identity.
func (a *DurationAggregator) Add(s models.ClosedSession) {
	if _, seen := a.totals[s.Identity]; !seen {
		a.order = append(a.order, s.Identity)
	}
	a.totals[s.Identity] += s.Duration
}

// Totals returns a copy of the cumulative seconds per identity.
func (a *DurationAggregator) Totals() map[string]float64 {
	return maps.Clone(a.totals)
}

// TopN returns up to n identities sorted by total duration descending.
// The result is empty, never nil, when n <= 0 or nothing was added.
func (a *DurationAggregator) TopN(n int) []models.RankedEntry {
	if n <= 0 || len(a.order) == 0 {
		return []models.RankedEntry{}
	}

	ranked := make([]models.RankedEntry, 0, len(a.order))
	for _, identity := range a.order {
		ranked = append(ranked, models.RankedEntry{
			Identity: identity,
			Duration: a.totals[identity],
		})
	}

	slices.SortStableFunc(ranked, func(x, y models.RankedEntry) int {
		return cmp.Compare(y.Duration, x.Duration)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
