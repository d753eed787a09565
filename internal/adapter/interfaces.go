// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package adapter

import (
	"context"

	"github.com/authfront/authfront-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// SignInParams are the parameters of a new sign-in attempt.
type SignInParams struct {
	// Identifier is the email address, username, or phone number the user
	// signs in with.
	Identifier string

	// Password, when non-empty, attempts the "password" strategy in the
	// same request.
	Password string

	// Strategy optionally forces a first-factor strategy (e.g. "email_code").
	Strategy string
}

// AttemptFactorParams are the parameters for advancing a sign-in attempt by
// verifying a factor.
type AttemptFactorParams struct {
	// Strategy names the factor being attempted ("password", "email_code", "totp", …).
	Strategy string

	// Password carries the password for the "password" strategy.
	Password string

	// Code carries the one-time code for code-based strategies.
	Code string
}

// Transport defines the typed request methods of the remote frontend API
// used by the sync engine. Implementations are responsible for
// serialisation, device-token header management, and mapping transport-level
// failures to [*APIError].
//
// Methods that mutate remote state return the piggybacked authoritative
// *models.Client from the response envelope in addition to their typed
// payload; it is nil when the server did not include one.
type Transport interface {
	// GetEnvironment fetches the instance environment settings.
	GetEnvironment(ctx context.Context) (*models.Environment, error)

	// GetClient fetches the current client snapshot for this device. A nil
	// client with nil error means the server knows no client yet.
	GetClient(ctx context.Context) (*models.Client, error)

	// CreateSignIn starts a sign-in attempt.
	CreateSignIn(ctx context.Context, params SignInParams) (*models.SignIn, *models.Client, error)

	// AttemptSignInFirstFactor advances the sign-in attempt identified by
	// signInID by verifying a first factor.
	AttemptSignInFirstFactor(ctx context.Context, signInID string, params AttemptFactorParams) (*models.SignIn, *models.Client, error)

	// TouchSession marks the session as active, optionally switching its
	// active organization when activeOrganizationID is non-empty.
	TouchSession(ctx context.Context, sessionID, activeOrganizationID string) (*models.Session, *models.Client, error)

	// RemoveSession signs out the single session identified by sessionID.
	RemoveSession(ctx context.Context, sessionID string) (*models.Session, *models.Client, error)

	// RemoveClientSessions signs out every session of this client while
	// retaining the device identification cookie.
	RemoveClientSessions(ctx context.Context) (*models.Client, error)

	// CreateSessionToken mints a session JWT, optionally scoped to an
	// organization.
	CreateSessionToken(ctx context.Context, sessionID, organizationID string) (*models.Token, error)

	// CreateSessionTokenWithTemplate mints a session JWT from a named
	// server-side template.
	CreateSessionTokenWithTemplate(ctx context.Context, sessionID, template string) (*models.Token, error)
}
