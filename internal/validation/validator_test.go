// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package validation

import (
	"strings"
	"testing"
)

type queryStruct struct {
	TopN        int    `query:"top_n" validate:"min=1,max=1000"`
	MinDuration int    `query:"min_duration" validate:"min=0,max=86400"`
	Type        string `query:"type" validate:"omitempty,graphtype"`
}

type configStruct struct {
	Engine string `koanf:"engine" validate:"required,oneof=csv duckdb"`
	Label  string `validate:"min=2"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input queryStruct
	}{
		{"defaults", queryStruct{TopN: 10, MinDuration: 30}},
		{"bounds", queryStruct{TopN: 1000, MinDuration: 0}},
		{"graph type", queryStruct{TopN: 1, Type: "online-statistics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantMsg   string
	}{
		{"top_n too small", &queryStruct{TopN: 0}, "top_n", "top_n must be at least 1"},
		{"top_n too large", &queryStruct{TopN: 5000}, "top_n", "top_n must be at most 1000"},
		{"negative duration", &queryStruct{TopN: 1, MinDuration: -1}, "min_duration", "min_duration must be at least 0"},
		{"unknown graph", &queryStruct{TopN: 1, Type: "pie"}, "type", "type must be one of: top-time-spent"},
		{"koanf tag", &configStruct{Engine: "sqlite", Label: "ok"}, "engine", "engine must be one of: csv duckdb"},
		{"string min", &configStruct{Engine: "csv", Label: "x"}, "Label", "Label must be at least 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Fields) != 1 {
				t.Fatalf("expected 1 field error, got %d", len(err.Fields))
			}
			if err.Fields[0].Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, err.Fields[0].Field)
			}
			if !strings.HasPrefix(err.Error(), tt.wantMsg) {
				t.Errorf("expected message starting with %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestRequestValidationError_Details(t *testing.T) {
	err := ValidateStruct(&queryStruct{TopN: 0, MinDuration: 90000})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields, ok := err.Details()["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("expected fields slice, got %T", err.Details()["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(fields))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected combined message, got %q", err.Error())
	}
}
