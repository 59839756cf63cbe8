// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

// Package geoip resolves player IP addresses to countries using the free
// ip-api.com service.
//
// The Client is used by raw log ingestion to fill the category of connected
// events. It never blocks ingestion on a bad lookup: callers log the error and
// keep the event with an empty country, which analytics counts as unknown.
//
//	client := geoip.NewClient(geoip.Config{BaseURL: "http://ip-api.com"})
//	country, err := client.Country(ctx, "8.8.8.8")
package geoip
