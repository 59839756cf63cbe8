// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/sessionmap/internal/models"
	"github.com/tomtom215/sessionmap/internal/sessions"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func at(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCSVSource_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "TimeStamp,NickName,Action,IPAddress,Country\n"+
		"2025-03-01 13:00:00,bob,disconnected,,\n")
	writeFile(t, dir, "a.csv", "timestamp,nickname,action,ipaddress,country\n"+
		"2025-03-01 12:00:00,alice,connected,1.2.3.4,Germany\n"+
		"2025-03-01T12:30:00,bob,Connected,,France\n"+
		"not-a-time,carol,connected,,\n"+
		"2025-03-01 12:40:00,,connected,,\n"+
		"2025-03-01 12:45:00,dave,entered,,\n"+
		"2025-03-01 12:50:00\n")
	writeFile(t, dir, "notes.txt", "ignored")

	events, err := NewCSVSource(dir, "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, models.Event{
		Identity:  "alice",
		Action:    models.ActionConnected,
		Timestamp: at("2025-03-01 12:00:00"),
		Category:  "Germany",
		IPAddress: "1.2.3.4",
	}, events[0])
	assert.Equal(t, "bob", events[1].Identity)
	assert.Equal(t, models.Action("Connected"), events[1].Action)
	assert.Equal(t, "France", events[1].Category)
	assert.Equal(t, models.Action("entered"), events[2].Action)
	// b.csv is read after a.csv.
	assert.Equal(t, models.ActionDisconnected, events[3].Action)
}

func TestCSVSource_ActionsAreCaseSensitive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "TimeStamp,NickName,Action,Country
"+
		"2025-03-01 12:00:00,alice,Connected,US
"+
		"2025-03-01 12:00:30,alice,kicked,US
"+
		"2025-03-01 12:01:40,alice,DISCONNECTED,
")

	events, err := NewCSVSource(dir, "*.csv").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)

	result := sessions.Aggregate(events, sessions.DefaultOptions())
	assert.Empty(t, result.TotalDurationByIdentity)
	assert.Empty(t, result.RankedTopN)
	assert.Empty(t, result.SessionCountByCategory)
}

func TestCSVSource_MissingDirectory(t *testing.T) {
	t.Parallel()

	events, err := NewCSVSource(filepath.Join(t.TempDir(), "nope"), "*.csv").Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestCSVSource_MissingHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "when,who\n2025-03-01 12:00:00,alice\n")

	_, err := NewCSVSource(dir, "*.csv").Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHeader))
}

func TestCSVSource_EmptyFileAndOptionalColumns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "")
	writeFile(t, dir, "min.csv", "Action,NickName,TimeStamp\nconnected,alice,2025-03-01T12:00:00Z\n")

	events, err := NewCSVSource(dir, "*.csv").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "alice", events[0].Identity)
	assert.Empty(t, events[0].Category)
	assert.True(t, events[0].Timestamp.Equal(at("2025-03-01 12:00:00")))
}

func TestCSVSource_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "TimeStamp,NickName,Action\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCSVSource(dir, "*.csv").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-03-01 12:00:00", want: at("2025-03-01 12:00:00")},
		{in: " 2025-03-01T12:00:00 ", want: at("2025-03-01 12:00:00")},
		{in: "2025-03-01T14:00:00+02:00", want: at("2025-03-01 12:00:00")},
		{in: "03/01/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestColumnIndex_ToEvent(t *testing.T) {
	t.Parallel()

	cols, err := newColumnIndex([]string{"\ufeffTimeStamp", "NickName", "Action", "Country"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		row    []string
		reason string
	}{
		{name: "valid", row: []string{"2025-03-01 12:00:00", "alice", "connected", "Spain"}},
		{name: "valid without country", row: []string{"2025-03-01 12:00:00", "alice", "connected"}},
		{name: "short", row: []string{"2025-03-01 12:00:00", "alice"}, reason: ReasonShortRow},
		{name: "blank identity", row: []string{"2025-03-01 12:00:00", "  ", "connected"}, reason: ReasonEmptyIdentity},
		{name: "bad time", row: []string{"yesterday", "alice", "connected"}, reason: ReasonBadTimestamp},
		{name: "unknown action kept", row: []string{"2025-03-01 12:00:00", "alice", "suicide"}},
		{name: "mixed case action kept", row: []string{"2025-03-01 12:00:00", "alice", "Connected"}},
		{name: "empty action", row: []string{"2025-03-01 12:00:00", "alice", "  "}, reason: ReasonEmptyAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, reason := cols.toEvent(tt.row)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

type stubSource struct {
	name   string
	events []models.Event
	err    error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Load(context.Context) ([]models.Event, error) {
	return s.events, s.err
}

func TestMulti_Load(t *testing.T) {
	t.Parallel()

	first := stubSource{name: "first", events: []models.Event{
		{Identity: "a", Action: models.ActionConnected, Timestamp: at("2025-03-01 12:00:10")},
		{Identity: "b", Action: models.ActionConnected, Timestamp: at("2025-03-01 12:00:00")},
	}}
	second := stubSource{name: "second", events: []models.Event{
		{Identity: "c", Action: models.ActionConnected, Timestamp: at("2025-03-01 12:00:10")},
	}}

	events, err := Multi{first, second}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{events[0].Identity, events[1].Identity, events[2].Identity})

	empty, err := Multi{}.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)

	boom := errors.New("boom")
	_, err = Multi{first, stubSource{name: "broken", err: boom}}.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken source")
}
