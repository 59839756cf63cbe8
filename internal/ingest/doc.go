// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package ingest loads connection events from disk.

Three sources implement Source:

  - CSVSource reads the parsed connection CSVs with encoding/csv.
  - DuckDBSource reads the same files through an in-memory DuckDB read_csv.
  - LogSource parses raw server logs and resolves connect addresses to
    countries through a GeoResolver.

Multi merges sources into one time-ordered slice. Rows that cannot be turned
into an event are skipped, logged at warn level, and counted on
ingest_rows_rejected_total by reason. A missing data directory yields no
events rather than an error.
*/
package ingest
