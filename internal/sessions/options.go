// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package sessions

import "time"

const (
	// DefaultTopN is the ranking length used by the dashboard.
	DefaultTopN = 10

	// DefaultMinSessionDuration is the category counting threshold.
	DefaultMinSessionDuration = 30 * time.Second

	// DefaultUnknownCategory labels sessions without a usable category.
	DefaultUnknownCategory = "Unknown"

	// DefaultMinOnlineSession filters short sessions out of hourly statistics.
	DefaultMinOnlineSession = 10 * time.Minute

	// DefaultTopCategories is the number of categories listed before "Other".
	DefaultTopCategories = 9

	// OtherCategory labels the remainder bucket of CategoryShare.
	OtherCategory = "Other"
)

// AnomalyNegativeDuration is reported when a disconnect precedes its connect.
const AnomalyNegativeDuration = "negative_duration"

// Anomaly describes a session that was dropped because it could not be valid.
type Anomaly struct {
	Kind     string
	Identity string
	Start    time.Time
	End      time.Time
	Duration float64
}

// Options configures one aggregation pass.
//
// Options is a plain value; start from DefaultOptions and override fields.
// TopN and MinSessionDuration are used exactly as given, so a TopN of 0 yields
// an empty ranking and a zero MinSessionDuration counts every session longer
// than zero seconds. An empty UnknownCategory falls back to
// DefaultUnknownCategory.
type Options struct {
	TopN               int
	MinSessionDuration time.Duration
	UnknownCategory    string
	MinOnlineSession   time.Duration

	// OnAnomaly, when set, is called for every dropped session.
	OnAnomaly func(Anomaly)
}

// DefaultOptions returns the options used by the dashboard.
func DefaultOptions() Options {
	return Options{
		TopN:               DefaultTopN,
		MinSessionDuration: DefaultMinSessionDuration,
		UnknownCategory:    DefaultUnknownCategory,
		MinOnlineSession:   DefaultMinOnlineSession,
	}
}

func (o Options) unknownCategory() string {
	if o.UnknownCategory == "" {
		return DefaultUnknownCategory
	}
	return o.UnknownCategory
}

func (o Options) reportAnomaly(a Anomaly) {
	if o.OnAnomaly != nil {
		o.OnAnomaly(a)
	}
}
