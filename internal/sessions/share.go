// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"cmp"
	"slices"

	"github.com/tomtom215/sessionmap/internal/models"
)

// CategoryShare returns the share of connected events per category.
//
// The first limit categories by connection count are listed individually,
// ties broken by first appearance, followed by an OtherCategory entry that
// carries the remaining percentage (possibly zero). Percentages are in the
// 0-100 range. An input without connected events yields an empty slice.
func CategoryShare(events []models.Event, limit int, unknownLabel string) []models.CategoryShare {
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, ev := range sortedByTime(events) {
		if ev.Action != models.ActionConnected {
			continue
		}
		category := NormalizeCategory(ev.Category, unknownLabel)
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
		total++
	}

	if total == 0 {
		return []models.CategoryShare{}
	}

	ranked := make([]models.CategoryShare, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, models.CategoryShare{
			Category: category,
			Count:    counts[category],
		})
	}
	slices.SortStableFunc(ranked, func(a, b models.CategoryShare) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if limit < 0 {
		limit = 0
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	remainingCount := total
	remaining := 100.0
	for i := range ranked {
		ranked[i].Percentage = float64(ranked[i].Count) / float64(total) * 100
		remaining -= ranked[i].Percentage
		remainingCount -= ranked[i].Count
	}
	if remaining < 0 {
		remaining = 0
	}

	return append(ranked, models.CategoryShare{
		Category:   OtherCategory,
		Count:      remainingCount,
		Percentage: remaining,
	})
}
