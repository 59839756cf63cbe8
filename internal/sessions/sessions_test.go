// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/sessionmap/internal/models"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func connect(identity string, offset int, category string) models.Event {
	return models.Event{
		Identity:  identity,
		Action:    models.ActionConnected,
		Timestamp: base.Add(time.Duration(offset) * time.Second),
		Category:  category,
	}
}

func disconnect(identity string, offset int) models.Event {
	return models.Event{
		Identity:  identity,
		Action:    models.ActionDisconnected,
		Timestamp: base.Add(time.Duration(offset) * time.Second),
	}
}

func TestAggregate_SingleSession(t *testing.T) {
	t.Parallel()

	result := Aggregate([]models.Event{
		connect("Alice", 0, "US"),
		disconnect("Alice", 100),
	}, DefaultOptions())

	assert.Equal(t, map[string]float64{"Alice": 100}, result.TotalDurationByIdentity)
	assert.Equal(t, []models.RankedEntry{{Identity: "Alice", Duration: 100}}, result.RankedTopN)
	assert.Equal(t, map[string]int{"US": 1}, result.SessionCountByCategory)
}

func TestAggregate_RepeatedConnectRestartsClock(t *testing.T) {
	t.Parallel()

	sessions := Collect(Reconstruct([]models.Event{
		connect("Bob", 0, "DE"),
		connect("Bob", 5, "FR"),
		disconnect("Bob", 10),
	}, DefaultOptions()))

	require.Len(t, sessions, 1)
	assert.Equal(t, 5.0, sessions[0].Duration)
	assert.Equal(t, base.Add(5*time.Second), sessions[0].Start)
	assert.Equal(t, "FR", sessions[0].Category)
}

func TestAggregate_OrphanDisconnect(t *testing.T) {
	t.Parallel()

	result := Aggregate([]models.Event{disconnect("Carl", 0)}, DefaultOptions())

	assert.Empty(t, result.TotalDurationByIdentity)
	assert.NotNil(t, result.TotalDurationByIdentity)
	assert.Empty(t, result.RankedTopN)
}

func TestAggregate_CategoryThreshold(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.MinSessionDuration = 30 * time.Second

	result := Aggregate([]models.Event{
		connect("Dana", 0, "US"),
		disconnect("Dana", 40),
		connect("Eve", 0, ""),
		disconnect("Eve", 5),
	}, opts)

	assert.Equal(t, map[string]int{"US": 1}, result.SessionCountByCategory)
	assert.Equal(t, map[string]float64{"Dana": 40, "Eve": 5}, result.TotalDurationByIdentity)
}

func TestAggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, events := range [][]models.Event{nil, {}} {
		result := Aggregate(events, DefaultOptions())

		assert.NotNil(t, result.TotalDurationByIdentity)
		assert.NotNil(t, result.RankedTopN)
		assert.NotNil(t, result.SessionCountByCategory)
		assert.Empty(t, result.TotalDurationByIdentity)
		assert.Empty(t, result.RankedTopN)
		assert.Empty(t, result.SessionCountByCategory)
	}
}

func TestAggregate_ThresholdIsStrict(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.MinSessionDuration = 30 * time.Second

	result := Aggregate([]models.Event{
		connect("Exact", 0, "US"),
		disconnect("Exact", 30),
		connect("Over", 0, "US"),
		disconnect("Over", 31),
	}, opts)

	assert.Equal(t, map[string]int{"US": 1}, result.SessionCountByCategory)
}

func TestAggregate_EmptyCategoryCountedAsUnknown(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.UnknownCategory = "Nowhere"

	result := Aggregate([]models.Event{
		connect("Fay", 0, "  "),
		disconnect("Fay", 120),
		connect("Gus", 0, "nan"),
		disconnect("Gus", 120),
	}, opts)

	assert.Equal(t, map[string]int{"Nowhere": 2}, result.SessionCountByCategory)
}

func TestAggregate_UnsortedInput(t *testing.T) {
	t.Parallel()

	sorted := []models.Event{
		connect("Alice", 0, "US"),
		connect("Bob", 10, "DE"),
		disconnect("Alice", 50),
		disconnect("Bob", 200),
	}
	shuffled := []models.Event{sorted[3], sorted[1], sorted[2], sorted[0]}

	assert.Equal(t, Aggregate(sorted, DefaultOptions()), Aggregate(shuffled, DefaultOptions()))
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		disconnect("Alice", 50),
		connect("Alice", 0, "US"),
	}
	original := append([]models.Event(nil), events...)

	_ = Aggregate(events, DefaultOptions())

	assert.Equal(t, original, events)
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		connect("Alice", 0, "US"),
		connect("Bob", 0, "DE"),
		disconnect("Bob", 45),
		disconnect("Alice", 90),
		connect("Alice", 100, "US"),
		disconnect("Alice", 160),
	}

	first := Aggregate(events, DefaultOptions())
	second := Aggregate(events, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestAggregate_TotalsEqualSumOfSessions(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		connect("Alice", 0, "US"),
		disconnect("Alice", 90),
		connect("Bob", 10, "DE"),
		disconnect("Bob", 70),
		connect("Alice", 100, "US"),
		disconnect("Alice", 130),
		disconnect("Carl", 131),
	}

	var total float64
	for s := range Reconstruct(events, DefaultOptions()) {
		total += s.Duration
	}

	var aggregated float64
	for _, d := range Aggregate(events, DefaultOptions()).TotalDurationByIdentity {
		aggregated += d
	}

	assert.InDelta(t, total, aggregated, 1e-9)
	assert.InDelta(t, 180.0, aggregated, 1e-9)
}

func TestAggregate_TopNOrderingAndTies(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		connect("Tie1", 0, "US"),
		connect("Long", 0, "US"),
		connect("Tie2", 0, "US"),
		connect("Short", 0, "US"),
		disconnect("Tie1", 60),
		disconnect("Tie2", 60),
		disconnect("Short", 30),
		disconnect("Long", 300),
	}

	tests := []struct {
		name string
		topN int
		want []string
	}{
		{"all", 10, []string{"Long", "Tie1", "Tie2", "Short"}},
		{"truncated", 2, []string{"Long", "Tie1"}},
		{"zero", 0, []string{}},
		{"negative", -3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			opts.TopN = tt.topN
			result := Aggregate(events, opts)

			got := make([]string, 0, len(result.RankedTopN))
			for i, entry := range result.RankedTopN {
				got = append(got, entry.Identity)
				assert.Equal(t, result.TotalDurationByIdentity[entry.Identity], entry.Duration)
				if i > 0 {
					assert.GreaterOrEqual(t, result.RankedTopN[i-1].Duration, entry.Duration)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_RankingTieBreakUsesFirstClosedSession(t *testing.T) {
	t.Parallel()

	result := Aggregate([]models.Event{
		connect("Zed", 0, "US"),
		connect("Amy", 0, "US"),
		disconnect("Zed", 50),
		disconnect("Amy", 50),
	}, DefaultOptions())

	require.Len(t, result.RankedTopN, 2)
	assert.Equal(t, "Zed", result.RankedTopN[0].Identity)
	assert.Equal(t, "Amy", result.RankedTopN[1].Identity)
}

func TestReconstruct_SingleUse(t *testing.T) {
	t.Parallel()

	seq := Reconstruct([]models.Event{
		connect("Alice", 0, "US"),
		disconnect("Alice", 10),
	}, DefaultOptions())

	assert.Len(t, Collect(seq), 1)
	assert.Empty(t, Collect(seq))
}

func TestReconstruct_EarlyBreak(t *testing.T) {
	t.Parallel()

	seq := Reconstruct([]models.Event{
		connect("Alice", 0, "US"),
		connect("Bob", 0, "US"),
		disconnect("Alice", 10),
		disconnect("Bob", 20),
	}, DefaultOptions())

	var seen []string
	for s := range seq {
		seen = append(seen, s.Identity)
		break
	}
	assert.Equal(t, []string{"Alice"}, seen)
}

func TestReconstruct_SameTimestampKeepsInputOrder(t *testing.T) {
	t.Parallel()

	sessions := Collect(Reconstruct([]models.Event{
		connect("Alice", 0, "US"),
		disconnect("Alice", 0),
	}, DefaultOptions()))

	require.Len(t, sessions, 1)
	assert.Zero(t, sessions[0].Duration)
}

func TestReconstruct_IgnoresUnknownActions(t *testing.T) {
	t.Parallel()

	sessions := Collect(Reconstruct([]models.Event{
		connect("Alice", 0, "US"),
		{Identity: "Alice", Action: models.Action("kicked"), Timestamp: base.Add(5 * time.Second)},
		disconnect("Alice", 10),
	}, DefaultOptions()))

	require.Len(t, sessions, 1)
	assert.Equal(t, 10.0, sessions[0].Duration)
}

func TestReconstruct_StaysOpenWithoutDisconnect(t *testing.T) {
	t.Parallel()

	sessions := Collect(Reconstruct([]models.Event{
		connect("Alice", 0, "US"),
		connect("Bob", 0, "US"),
		disconnect("Bob", 10),
	}, DefaultOptions()))

	require.Len(t, sessions, 1)
	assert.Equal(t, "Bob", sessions[0].Identity)
}

func TestOptions_AnomalyHookNotCalledForValidInput(t *testing.T) {
	t.Parallel()

	var anomalies []Anomaly
	opts := DefaultOptions()
	opts.OnAnomaly = func(a Anomaly) { anomalies = append(anomalies, a) }

	_ = Aggregate([]models.Event{
		disconnect("Alice", 0),
		connect("Alice", 10, "US"),
		disconnect("Alice", 20),
	}, opts)

	assert.Empty(t, anomalies)
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"US", "US"},
		{"  Germany ", "Germany"},
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"NaN", "Unknown"},
		{"null", "Unknown"},
		{"None", "Unknown"},
		{"<nil>", "Unknown"},
		{"N/A", "Unknown"},
		{"-", "Unknown"},
		{"Nantes", "Nantes"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeCategory(tt.raw, ""))
		})
	}
}

func TestCategoryCounter_CountsCopy(t *testing.T) {
	t.Parallel()

	counter := NewCategoryCounter(0, "")
	counter.Add(models.ClosedSession{Identity: "a", Duration: 1, Category: "US"})
	counter.Add(models.ClosedSession{Identity: "b", Duration: 0, Category: "US"})

	counts := counter.Counts()
	counts["US"] = 99

	assert.Equal(t, map[string]int{"US": 1}, counter.Counts())
}

func TestAggregateCount_CountsClosedSessionsBeforeThreshold(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		connect("Alice", 0, "US"),
		disconnect("Alice", 10),
		connect("Bob", 0, "DE"),
		disconnect("Bob", 100),
		connect("Carol", 0, "FR"),
		disconnect("Dave", 50),
	}

	result, closed := AggregateCount(events, DefaultOptions())
	assert.Equal(t, 2, closed)
	assert.Equal(t, map[string]int{"DE": 1}, result.SessionCountByCategory)
	assert.Equal(t, Aggregate(events, DefaultOptions()), result)
}
