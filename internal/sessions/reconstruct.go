// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"iter"
	"slices"
	"time"

	"github.com/tomtom215/sessionmap/internal/models"
)

// openSession is the state held between a connected event and its matching
// disconnected event.
type openSession struct {
	start    time.Time
	category string
}

// Reconstruct returns the closed sessions found in events, in the order their
// disconnected events occur.
//
// The sequence is lazy and single-use: sorting and pairing happen when it is
// first ranged over, and ranging over it again yields nothing. The caller's
// slice is not modified.
func Reconstruct(events []models.Event, opts Options) iter.Seq[models.ClosedSession] {
	unknown := opts.unknownCategory()
	consumed := false

	return func(yield func(models.ClosedSession) bool) {
		if consumed {
			return
		}
		consumed = true

		open := make(map[string]openSession)
		for _, ev := range sortedByTime(events) {
			switch ev.Action {
			case models.ActionConnected:
				open[ev.Identity] = openSession{
					start:    ev.Timestamp,
					category: NormalizeCategory(ev.Category, unknown),
				}

			case models.ActionDisconnected:
				started, ok := open[ev.Identity]
				if !ok {
					continue
				}
				delete(open, ev.Identity)

				duration := ev.Timestamp.Sub(started.start).Seconds()
				if duration < 0 {
					opts.reportAnomaly(Anomaly{
						Kind:     AnomalyNegativeDuration,
						Identity: ev.Identity,
						Start:    started.start,
						End:      ev.Timestamp,
						Duration: duration,
					})
					continue
				}

				if !yield(models.ClosedSession{
					Identity: ev.Identity,
					Start:    started.start,
					End:      ev.Timestamp,
					Duration: duration,
					Category: started.category,
				}) {
					return
				}
			}
		}
	}
}

// sortedByTime returns a copy of events in non-decreasing timestamp order.
// The sort is stable so a connect and disconnect logged in the same second
// keep their original order.
func sortedByTime(events []models.Event) []models.Event {
	ordered := slices.Clone(events)
	slices.SortStableFunc(ordered, func(a, b models.Event) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return ordered
}
