// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/tomtom215/sessionmap/internal/logging"
	"github.com/tomtom215/sessionmap/internal/models"
)

// LogTimestampLayout is the timestamp format of Source-engine server logs.
const LogTimestampLayout = "01/02/2006 - 15:04:05"

var (
	logLinePrefix = regexp.MustCompile(`^L (\d{2}/\d{2}/\d{4} - \d{2}:\d{2}:\d{2}): "`)
	ipv4Pattern   = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1?\d?\d)\.){3}(?:25[0-5]|2[0-4]\d|1?\d?\d)\b`)
)

// GeoResolver maps an IP address to a country name.
type GeoResolver interface {
	Country(ctx context.Context, ip string) (string, error)
}

// LogSource parses raw server logs such as
//
//	L 03/01/2025 - 12:34:56: "Nick<2><STEAM_1:0:123><>" connected, address "1.2.3.4:27005"
//
// Only connected and disconnected lines become events.
type LogSource struct {
	Dir     string
	Pattern string

	// Since drops lines at or before this instant. Zero keeps all lines.
	Since time.Time

	// Geo resolves connect addresses to countries. Nil leaves Category empty.
	Geo GeoResolver
}

// NewLogSource creates a raw log source.
func NewLogSource(dir, pattern string, since time.Time, geo GeoResolver) *LogSource {
	if pattern == "" {
		pattern = "*.log"
	}
	return &LogSource{Dir: dir, Pattern: pattern, Since: since, Geo: geo}
}

// Name implements Source.
func (s *LogSource) Name() string {
	return "log"
}

// Load implements Source.
func (s *LogSource) Load(ctx context.Context) ([]models.Event, error) {
	start := time.Now()
	files, err := matchFiles(s.Dir, s.Pattern)
	if err != nil {
		return nil, err
	}

	stats := newStats()
	events := make([]models.Event, 0)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		events, err = s.readFile(ctx, path, events, stats)
		if err != nil {
			return nil, err
		}
		stats.Files++
	}

	stats.Loaded = len(events)
	stats.log(ctx, s.Name(), time.Since(start))
	return events, nil
}

func (s *LogSource) readFile(ctx context.Context, path string, events []models.Event, stats *Stats) ([]models.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		event, reason, ok := ParseLogLine(scanner.Text())
		if !ok {
			continue
		}
		if reason != "" {
			stats.reject(s.Name(), reason)
			logging.Ctx(ctx).Warn().
				Str("file", path).
				Int("line", line).
				Str("reason", reason).
				Msg("Skipping log line")
			continue
		}
		if !s.Since.IsZero() && !event.Timestamp.After(s.Since) {
			continue
		}

		if event.Action == models.ActionConnected && event.IPAddress != "" && s.Geo != nil {
			country, err := s.Geo.Country(ctx, event.IPAddress)
			if err != nil {
				logging.Ctx(ctx).Warn().
					Err(err).
					Str("ip", event.IPAddress).
					Str("identity", event.Identity).
					Msg("Country lookup failed")
			}
			event.Category = country
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return events, nil
}

// ParseLogLine extracts an event from one log line. ok is false for lines
// that carry no connect or disconnect; reason is set when such a line is
// malformed.
func ParseLogLine(line string) (event models.Event, reason string, ok bool) {
	switch {
	case strings.Contains(line, "disconnected"):
		event.Action = models.ActionDisconnected
	case strings.Contains(line, "connected"):
		event.Action = models.ActionConnected
	default:
		return models.Event{}, "", false
	}

	m := logLinePrefix.FindStringSubmatchIndex(line)
	if m == nil {
		return models.Event{}, ReasonBadTimestamp, true
	}
	ts, err := time.ParseInLocation(LogTimestampLayout, line[m[2]:m[3]], time.UTC)
	if err != nil {
		return models.Event{}, ReasonBadTimestamp, true
	}
	event.Timestamp = ts

	rest := line[m[1]:]
	end := strings.IndexByte(rest, '<')
	if end <= 0 {
		return models.Event{}, ReasonEmptyIdentity, true
	}
	event.Identity = strings.TrimSpace(rest[:end])
	if event.Identity == "" {
		return models.Event{}, ReasonEmptyIdentity, true
	}

	if event.Action == models.ActionConnected {
		if ips := ipv4Pattern.FindAllString(rest[end:], -1); len(ips) > 0 {
			event.IPAddress = ips[len(ips)-1]
		}
	}
	return event, "", true
}
