// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"iter"

	"github.com/tomtom215/sessionmap/internal/models"
)

// Aggregate reconstructs sessions from events and returns the per-identity
// totals, the top N ranking, and the per-category session counts.
//
// Empty input is the normal "no data" case: the maps and the ranking are
// empty, never nil.
func Aggregate(events []models.Event, opts Options) models.AggregateResult {
	result, _ := AggregateCount(events, opts)
	return result
}

// AggregateCount is Aggregate that also reports how many sessions were
// closed, before any threshold is applied.
func AggregateCount(events []models.Event, opts Options) (models.AggregateResult, int) {
	durations := NewDurationAggregator()
	categories := NewCategoryCounter(opts.MinSessionDuration, opts.unknownCategory())

	closed := 0
	for session := range Reconstruct(events, opts) {
		durations.Add(session)
		categories.Add(session)
		closed++
	}

	return models.AggregateResult{
		TotalDurationByIdentity: durations.Totals(),
		RankedTopN:              durations.TopN(opts.TopN),
		SessionCountByCategory:  categories.Counts(),
	}, closed
}

// Collect drains a session sequence into a slice. Unlike slices.Collect it
// returns an empty slice rather than nil for an empty sequence.
func Collect(seq iter.Seq[models.ClosedSession]) []models.ClosedSession {
	out := []models.ClosedSession{}
	for s := range seq {
		out = append(out, s)
	}
	return out
}
