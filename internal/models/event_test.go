// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		want  Action
		valid bool
	}{
		{"connected", ActionConnected, true},
		{"disconnected", ActionDisconnected, true},
		{" connected\t", ActionConnected, true},
		{" Connected ", Action("Connected"), false},
		{"DISCONNECTED", Action("DISCONNECTED"), false},
		{"kicked", Action("kicked"), false},
		{"", Action(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseAction(tt.raw)
			if got != tt.want || ok != tt.valid {
				t.Errorf("ParseAction(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.valid)
			}
		})
	}
}

func TestGraphTypeIsValid(t *testing.T) {
	t.Parallel()

	for _, g := range GraphTypes {
		if !g.IsValid() {
			t.Errorf("expected %q to be valid", g)
		}
	}
	if GraphType("pie").IsValid() {
		t.Error("expected unknown graph type to be invalid")
	}
}

func TestEventJSON(t *testing.T) {
	t.Parallel()

	ev := Event{
		Identity:  "Alice",
		Action:    ActionConnected,
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["action"] != "connected" {
		t.Errorf("expected action connected, got %v", fields["action"])
	}
	if _, ok := fields["category"]; ok {
		t.Error("expected empty category to be omitted")
	}
}

func TestAggregateResultEmptyJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(AggregateResult{
		TotalDurationByIdentity: map[string]float64{},
		RankedTopN:              []RankedEntry{},
		SessionCountByCategory:  map[string]int{},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"total_duration_by_identity":{},"ranked_top_n":[],"session_count_by_category":{}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
