// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package models

import "time"

// ClosedSession is a completed connected -> disconnected pair for one player.
//
// Duration is End minus Start in seconds. Category is the normalized category
// recorded on the opening connected event.
type ClosedSession struct {
	Identity string    `json:"identity"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration float64   `json:"duration"`
	Category string    `json:"category"`
}

// Geolocation is the result of an IP address lookup.
type Geolocation struct {
	IPAddress   string    `json:"ip_address"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code,omitempty"`
	City        *string   `json:"city,omitempty"`
	Region      *string   `json:"region,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LastUpdated time.Time `json:"last_updated"`
}
