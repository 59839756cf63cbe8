// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"maps"
	"strings"
	"time"

	"github.com/tomtom215/sessionmap/internal/models"
)

// placeholderCategories are values that spreadsheets and CSV exports write in
// place of a missing country.
var placeholderCategories = map[string]struct{}{
	"nan":   {},
	"null":  {},
	"none":  {},
	"<nil>": {},
	"n/a":   {},
	"-":     {},
}

// NormalizeCategory returns the trimmed category, or unknownLabel when the
// value is empty or a placeholder for a missing value.
func NormalizeCategory(raw, unknownLabel string) string {
	if unknownLabel == "" {
		unknownLabel = DefaultUnknownCategory
	}
	category := strings.TrimSpace(raw)
	if category == "" {
		return unknownLabel
	}
	if _, ok := placeholderCategories[strings.ToLower(category)]; ok {
		return unknownLabel
	}
	return category
}

// CategoryCounter counts sessions per category, restricted to sessions whose
// duration strictly exceeds a threshold.
type CategoryCounter struct {
	threshold float64
	unknown   string
	counts    map[string]int
}

// NewCategoryCounter creates a counter that only counts sessions longer than
// minDuration.
func NewCategoryCounter(minDuration time.Duration, unknownLabel string) *CategoryCounter {
	if unknownLabel == "" {
		unknownLabel = DefaultUnknownCategory
	}
	return &CategoryCounter{
		threshold: minDuration.Seconds(),
		unknown:   unknownLabel,
		counts:    make(map[string]int),
	}
}

// Add counts the session if it qualifies.
func (c *CategoryCounter) Add(s models.ClosedSession) {
	if s.Duration <= c.threshold {
		return
	}
	c.counts[NormalizeCategory(s.Category, c.unknown)]++
}

// Counts returns a copy of the per-category counts. The map is empty, never
// nil, when no session qualified.
func (c *CategoryCounter) Counts() map[string]int {
	return maps.Clone(c.counts)
}
