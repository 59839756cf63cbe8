// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/sessionmap/internal/validation"
)

// AnalyticsQuery holds the optional per-request overrides.
type AnalyticsQuery struct {
	TopN        *int `query:"top_n" validate:"omitnil,min=1,max=1000"`
	MinDuration *int `query:"min_duration" validate:"omitnil,min=0,max=86400"`
}

// GraphQuery selects the chart served by /api/v1/graph.
type GraphQuery struct {
	AnalyticsQuery
	Type string `query:"type" validate:"required,graphtype"`
}

// parseAnalyticsQuery reads and validates top_n and min_duration.
func parseAnalyticsQuery(r *http.Request) (AnalyticsQuery, *validation.RequestValidationError) {
	var q AnalyticsQuery
	var fields []validation.FieldError

	q.TopN, fields = parseIntParam(r, "top_n", fields)
	q.MinDuration, fields = parseIntParam(r, "min_duration", fields)
	if len(fields) > 0 {
		return q, &validation.RequestValidationError{Fields: fields}
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}

func parseGraphQuery(r *http.Request) (GraphQuery, *validation.RequestValidationError) {
	base, verr := parseAnalyticsQuery(r)
	if verr != nil {
		return GraphQuery{}, verr
	}

	q := GraphQuery{
		AnalyticsQuery: base,
		Type:           strings.TrimSpace(r.URL.Query().Get("type")),
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}

// parseIntParam returns nil when the parameter is absent and records a
// field error when it is not an integer.
func parseIntParam(r *http.Request, name string, fields []validation.FieldError) (*int, []validation.FieldError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, fields
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, append(fields, validation.FieldError{
			Field:   name,
			Tag:     "number",
			Value:   raw,
			Message: name + " must be an integer",
		})
	}
	return &v, fields
}
