// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package models

import (
	"strings"
	"time"
)

// Action is the kind of a connection event as it appears in the server log.
// Values are case-sensitive; anything other than ActionConnected and
// ActionDisconnected is carried through ingestion but ignored by analytics.
type Action string

const (
	ActionConnected    Action = "connected"
	ActionDisconnected Action = "disconnected"
)

// IsValid reports whether the action is one of the two recognized kinds.
func (a Action) IsValid() bool {
	switch a {
	case ActionConnected, ActionDisconnected:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	return string(a)
}

// ParseAction trims surrounding whitespace from a raw action column value and
// reports whether the result is a recognized action. Letter case is kept, so
// "Connected" is carried as-is and is not recognized.
func ParseAction(raw string) (Action, bool) {
	a := Action(strings.TrimSpace(raw))
	return a, a.IsValid()
}

// Event is a single connect or disconnect occurrence for a player.
//
// Category is the player's country at the time of the event. It is usually
// only present on connected events; an empty value is classified as unknown
// by the analytics layer.
type Event struct {
	Identity  string    `json:"identity"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
}
