// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package storage defines the pluggable key/value persistence contract used
// to cache authentication state between runs, together with two ready-made
// implementations: a volatile in-memory store and a SQLite-backed store.
//
// Callers may substitute their own implementation (filesystem, OS keychain,
// encrypted store) at SDK construction time; the only requirements are the
// last-write-wins per-key semantics of the [Storage] interface and safety for
// concurrent use.
package storage

import "errors"

// ErrNotFound is returned by implementations that need an error value for an
// absent key; Get itself reports absence via its boolean.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a string-keyed key/value store. No ordering or transactional
// guarantees are required beyond last-write-wins per key. Implementations
// must be safe for concurrent use from multiple goroutines.
type Storage interface {
	// Get returns the value stored under key and whether the key was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
