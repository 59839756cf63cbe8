// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package cache provides a bounded, thread-safe LRU cache with TTL expiry.

The GeoIP client keeps resolved addresses here so a long-running server
does not grow its lookup memo without limit while repeated reads of the
same logs still avoid the remote API.

# Behavior

  - Get, Add and Remove are O(1).
  - When capacity is reached the least recently used entry is evicted.
  - Expiry is lazy: an expired entry is dropped when it is next read.
  - Hit and miss counters are available through Stats.
*/
package cache
