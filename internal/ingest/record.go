// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/sessionmap/internal/models"
)

// CSV column names, matched case-insensitively.
const (
	ColTimeStamp = "timestamp"
	ColNickName  = "nickname"
	ColAction    = "action"
	ColIPAddress = "ipaddress"
	ColCountry   = "country"
)

// CSVHeader is the header written by the log parser.
var CSVHeader = []string{"TimeStamp", "NickName", "Action", "IPAddress", "Country"}

// timestampLayouts are tried in order. Timestamps without a zone are UTC.
var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// columnIndex maps a header row to column positions.
type columnIndex struct {
	timestamp, nickname, action, ip, country int
	width                                    int
}

func newColumnIndex(header []string) (columnIndex, error) {
	idx := columnIndex{timestamp: -1, nickname: -1, action: -1, ip: -1, country: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case ColTimeStamp:
			idx.timestamp = i
		case ColNickName:
			idx.nickname = i
		case ColAction:
			idx.action = i
		case ColIPAddress:
			idx.ip = i
		case ColCountry:
			idx.country = i
		}
	}

	var missing []string
	if idx.timestamp < 0 {
		missing = append(missing, "TimeStamp")
	}
	if idx.nickname < 0 {
		missing = append(missing, "NickName")
	}
	if idx.action < 0 {
		missing = append(missing, "Action")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrNoHeader, strings.Join(missing, ", "))
	}

	idx.width = max(idx.timestamp, idx.nickname, idx.action) + 1
	return idx, nil
}

// toEvent converts one row. The second return value is the rejection reason
// when the row is unusable. Unrecognized actions are kept verbatim; the
// session reconstruction ignores them.
func (c columnIndex) toEvent(row []string) (models.Event, string) {
	if len(row) < c.width {
		return models.Event{}, ReasonShortRow
	}

	identity := strings.TrimSpace(row[c.nickname])
	if identity == "" {
		return models.Event{}, ReasonEmptyIdentity
	}

	ts, err := parseTimestamp(row[c.timestamp])
	if err != nil {
		return models.Event{}, ReasonBadTimestamp
	}

	action, _ := models.ParseAction(row[c.action])
	if action == "" {
		return models.Event{}, ReasonEmptyAction
	}

	return models.Event{
		Identity:  identity,
		Action:    action,
		Timestamp: ts,
		Category:  optional(row, c.country),
		IPAddress: optional(row, c.ip),
	}, ""
}

func optional(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
