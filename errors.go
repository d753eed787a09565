// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package authfront

import (
	"github.com/authfront/authfront-go/internal/adapter"
	"github.com/authfront/authfront-go/internal/service"
	"github.com/authfront/authfront-go/internal/state"
)

// Sentinel errors returned by SDK operations. API failures additionally
// carry an *APIError that unwraps to the matching HTTP-status sentinel.
var (
	ErrNotLoaded            = service.ErrNotLoaded
	ErrNoTarget             = service.ErrNoTarget
	ErrNoActiveSession      = service.ErrNoActiveSession
	ErrSessionNotFound      = service.ErrSessionNotFound
	ErrOrganizationNotFound = service.ErrOrganizationNotFound
	ErrNoUserOnSession      = service.ErrNoUserOnSession

	ErrBadRequest          = adapter.ErrBadRequest
	ErrUnauthorized        = adapter.ErrUnauthorized
	ErrForbidden           = adapter.ErrForbidden
	ErrNotFound            = adapter.ErrNotFound
	ErrConflict            = adapter.ErrConflict
	ErrUnprocessable       = adapter.ErrUnprocessable
	ErrTooManyRequests     = adapter.ErrTooManyRequests
	ErrInternalServerError = adapter.ErrInternalServerError
)

// APIError describes a structured error response from the remote service.
type APIError = adapter.APIError

// Listener observes authentication state changes. Every argument may be nil.
type Listener = state.Listener

// Handle identifies a registered listener.
type Handle = state.Handle

// SignInParams are the inputs to SignIn.
type SignInParams = adapter.SignInParams

// AttemptFactorParams are the inputs to AttemptFirstFactor.
type AttemptFactorParams = adapter.AttemptFactorParams
