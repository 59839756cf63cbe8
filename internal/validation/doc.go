// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

// Package validation wraps a shared go-playground/validator instance used for
// API query parameters and configuration.
//
// Struct fields are named in messages by their `query` (or `koanf`) tag:
//
//	type SummaryRequest struct {
//	    TopN int `query:"top_n" validate:"min=1,max=1000"`
//	}
//
// produces "top_n must be at most 1000". The custom `graphtype` tag accepts
// the values of models.GraphTypes.
package validation
