// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"time"

	"github.com/tomtom215/sessionmap/internal/models"
)

const hoursInDay = 24

// HourlyConcurrency returns the average number of concurrent players for each
// hour of the day (UTC).
//
// Sessions shorter than opts.MinOnlineSession are ignored. The observation
// window runs from midnight of the earliest connected or disconnected event
// (other actions do not widen it) to the end of the day
// containing now; each session's overlap with every hour block is summed per
// hour of day and divided by the number of days in the window. The result
// always has 24 entries ordered by hour.
func HourlyConcurrency(events []models.Event, opts Options, now time.Time) models.OnlineStatistics {
	stats := make(models.OnlineStatistics, hoursInDay)
	for hour := range stats {
		stats[hour].Hour = hour
	}

	sessions := Collect(Reconstruct(events, opts))
	if len(sessions) == 0 {
		return stats
	}

	earliest := now.UTC()
	for _, ev := range events {
		if !ev.Action.IsValid() {
			continue
		}
		if ev.Timestamp.UTC().Before(earliest) {
			earliest = ev.Timestamp.UTC()
		}
	}

	windowStart := truncateToDay(earliest)
	windowEnd := truncateToDay(now.UTC()).Add(hoursInDay * time.Hour)
	days := int(windowEnd.Sub(windowStart) / (hoursInDay * time.Hour))
	if days < 1 {
		days = 1
	}

	var overlap [hoursInDay]float64
	for _, s := range sessions {
		if s.End.Sub(s.Start) < opts.MinOnlineSession {
			continue
		}

		start := maxTime(s.Start.UTC(), windowStart)
		end := minTime(s.End.UTC(), windowEnd)
		if !end.After(start) {
			continue
		}

		for block := start.Truncate(time.Hour); block.Before(end); block = block.Add(time.Hour) {
			seconds := minTime(end, block.Add(time.Hour)).Sub(maxTime(start, block)).Seconds()
			if seconds > 0 {
				overlap[block.Hour()] += seconds
			}
		}
	}

	for hour := range stats {
		stats[hour].ConcurrentPlayersCount = overlap[hour] / (float64(days) * time.Hour.Seconds())
	}
	return stats
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
