// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package service

import (
	"context"

	"github.com/authfront/authfront-go/internal/adapter"
	"github.com/authfront/authfront-go/models"
)

// Engine orchestrates synchronisation of the locally cached authentication
// state with the remote frontend API: initial load (cache-then-network),
// post-mutation refresh, background revalidation, and token retrieval with
// caching.
type Engine interface {
	// Load initialises the state: a cached snapshot from storage is applied
	// immediately and revalidated in the background; with a cold cache the
	// snapshot is fetched synchronously and a fetch failure fails the Load.
	// Calling Load on an already loaded engine is a no-op.
	Load(ctx context.Context) error

	// Loaded reports whether the initial Load has completed.
	Loaded() bool

	// SignIn starts a sign-in attempt and applies the server's updated
	// client state.
	SignIn(ctx context.Context, params adapter.SignInParams) (*models.SignIn, error)

	// AttemptFirstFactor advances a sign-in attempt by verifying a first
	// factor and applies the server's updated client state.
	AttemptFirstFactor(ctx context.Context, signInID string, params adapter.AttemptFactorParams) (*models.SignIn, error)

	// SetActive switches the active session and/or the active organization.
	// At least one target must be given; the organization may be referenced
	// by identifier or slug.
	SetActive(ctx context.Context, sessionID, orgIDOrSlug string) error

	// SignOut removes the session identified by sessionID, or every session
	// of the client when sessionID is empty, and purges cached tokens of the
	// removed sessions.
	SignOut(ctx context.Context, sessionID string) error

	// GetToken returns a session JWT for the given session (the active
	// session when sessionID is empty), minted from the named template when
	// template is non-empty. A cached, non-expired token is returned without
	// a network call.
	GetToken(ctx context.Context, sessionID, template string) (string, error)

	// Shutdown stops the background revalidation task and waits for it to
	// exit.
	Shutdown()
}
