// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

// Package sessions rebuilds player sessions from connect/disconnect events and
// aggregates them into the statistics behind the dashboard charts.
//
// # Reconstruction
//
// Reconstruct pairs connected and disconnected events per identity. Each
// identity has at most one open session:
//
//	Closed --connected--> Open --disconnected--> Closed (session emitted)
//	Open   --connected--> Open (start time and category replaced)
//
// A repeated connected event restarts the session clock and the earlier open
// session is lost. A disconnected event with no open session is ignored, as
// are actions other than connected and disconnected. Sessions still open when
// the input ends are discarded.
//
// Input is never assumed to be ordered: Reconstruct sorts a private copy by
// timestamp (stable, so equal timestamps keep their input order).
//
// # Aggregation
//
// Aggregate consumes the reconstructed sessions once and produces:
//
//   - total seconds per identity (DurationAggregator)
//   - the top N identities by total time, ties broken by first appearance
//   - session counts per category for sessions strictly longer than
//     Options.MinSessionDuration (CategoryCounter)
//
// Everything in this package is a pure function of its input. Each call owns
// its maps, so concurrent calls on independently loaded events need no
// locking.
//
// # Usage
//
//	result := sessions.Aggregate(events, sessions.DefaultOptions())
//	for _, entry := range result.RankedTopN {
//	    fmt.Println(entry.Identity, entry.Duration)
//	}
package sessions
