// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package logging provides the process-wide zerolog logger.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("dir", cfg.Data.CSVDir).Msg("Loading events")
	logging.Ctx(r.Context()).Warn().Err(err).Msg("Request failed")

Ctx adds the request_id set by the API middleware and the correlation_id set
for background operations. WithComponent tags a child logger:

	ingestLog := logging.WithComponent("ingest")

# Configuration

Environment Variables (read by internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# slog Interop

NewSlogLogger returns a *slog.Logger writing through zerolog; the supervisor
passes it to sutureslog so restarts and failures share the JSON stream.

Always terminate an event with Msg or Send, otherwise nothing is written.
*/
package logging
