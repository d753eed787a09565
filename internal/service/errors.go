// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package service

import "errors"

var (
	// ErrNotLoaded is returned by operations that require authentication
	// state before Load has completed.
	ErrNotLoaded = errors.New("client state not loaded")

	// ErrNoTarget is returned by SetActive when neither a session nor an
	// organization target is given.
	ErrNoTarget = errors.New("either session id or organization id/slug must be provided")

	// ErrNoActiveSession is returned when an operation needs a session and
	// none is designated or resolvable.
	ErrNoActiveSession = errors.New("no active session")

	ErrSessionNotFound      = errors.New("session not found in client sessions")
	ErrOrganizationNotFound = errors.New("organization not found in user memberships")
	ErrNoUserOnSession      = errors.New("session carries no user")
)
