// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package api

import (
	"cmp"
	"slices"

	"github.com/tomtom215/sessionmap/internal/models"
)

const (
	titleTopTimeSpent    = "Top time spent (seconds)"
	titleCountrySessions = "Sessions per country"
)

// topTimeSpentChart turns the ranking into chart series, preserving its order.
func topTimeSpentChart(ranked []models.RankedEntry) models.ChartData {
	chart := models.ChartData{
		Title:  titleTopTimeSpent,
		Labels: make([]string, 0, len(ranked)),
		Values: make([]float64, 0, len(ranked)),
	}
	for _, entry := range ranked {
		chart.Labels = append(chart.Labels, entry.Identity)
		chart.Values = append(chart.Values, entry.Duration)
	}
	chart.NoData = len(ranked) == 0
	return chart
}

// categoryCountChart orders categories by count descending, then by name,
// so the chart is stable across requests.
func categoryCountChart(counts map[string]int) models.ChartData {
	type bar struct {
		label string
		count int
	}
	bars := make([]bar, 0, len(counts))
	for label, count := range counts {
		bars = append(bars, bar{label: label, count: count})
	}
	slices.SortFunc(bars, func(a, b bar) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.label, b.label)
	})

	chart := models.ChartData{
		Title:  titleCountrySessions,
		Labels: make([]string, 0, len(bars)),
		Values: make([]float64, 0, len(bars)),
		NoData: len(bars) == 0,
	}
	for _, b := range bars {
		chart.Labels = append(chart.Labels, b.label)
		chart.Values = append(chart.Values, float64(b.count))
	}
	return chart
}
