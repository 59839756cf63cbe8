// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuckDBSource_MatchesCSVSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "TimeStamp,NickName,Action,IPAddress,Country\n"+
		"2025-03-01 12:00:00,alice,connected,1.2.3.4,Germany\n"+
		"bogus,bob,connected,,\n"+
		"2025-03-01 13:00:00,alice,disconnected,,\n")
	writeFile(t, dir, "b.csv", "NickName,TimeStamp,Action\n"+
		"carol,2025-03-01 14:00:00,connected\n")

	ctx := context.Background()
	want, err := NewCSVSource(dir, "*.csv").Load(ctx)
	require.NoError(t, err)

	got, err := NewDuckDBSource(dir, "*.csv").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, got, 3)
}

func TestDuckDBSource_NoFiles(t *testing.T) {
	t.Parallel()

	events, err := NewDuckDBSource(filepath.Join(t.TempDir(), "missing"), "").Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
