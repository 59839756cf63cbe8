// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/sessionmap/internal/models"
)

func TestCategoryShare(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		connect("a", 0, "US"),
		connect("b", 1, "DE"),
		connect("c", 2, "US"),
		connect("d", 3, "FR"),
		disconnect("a", 4),
		connect("e", 5, ""),
	}

	t.Run("limit covers all categories", func(t *testing.T) {
		t.Parallel()

		shares := CategoryShare(events, DefaultTopCategories, "")

		require.Len(t, shares, 5)
		assert.Equal(t, "US", shares[0].Category)
		assert.Equal(t, 2, shares[0].Count)
		assert.InDelta(t, 40.0, shares[0].Percentage, 1e-9)
		assert.Equal(t, []string{"US", "DE", "FR", "Unknown", OtherCategory}, shareCategories(shares))

		last := shares[len(shares)-1]
		assert.Equal(t, 0, last.Count)
		assert.InDelta(t, 0.0, last.Percentage, 1e-9)
	})

	t.Run("limit folds remainder into other", func(t *testing.T) {
		t.Parallel()

		shares := CategoryShare(events, 1, "")

		require.Len(t, shares, 2)
		assert.Equal(t, "US", shares[0].Category)
		assert.Equal(t, OtherCategory, shares[1].Category)
		assert.Equal(t, 3, shares[1].Count)
		assert.InDelta(t, 60.0, shares[1].Percentage, 1e-9)
	})

	t.Run("zero limit", func(t *testing.T) {
		t.Parallel()

		shares := CategoryShare(events, 0, "")

		require.Len(t, shares, 1)
		assert.InDelta(t, 100.0, shares[0].Percentage, 1e-9)
	})
}

func TestCategoryShare_NoConnections(t *testing.T) {
	t.Parallel()

	shares := CategoryShare([]models.Event{disconnect("a", 0)}, DefaultTopCategories, "")

	assert.NotNil(t, shares)
	assert.Empty(t, shares)
}

func shareCategories(shares []models.CategoryShare) []string {
	out := make([]string, 0, len(shares))
	for _, s := range shares {
		out = append(out, s.Category)
	}
	return out
}
