// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package authfront is a client SDK for a frontend authentication API. It
// maintains a locally cached snapshot of the authenticated client (the
// multi-session device state), the active session, user, and organization,
// keeps the cache synchronized with the remote service after every mutating
// call, and notifies registered listeners whenever the cached state changes.
//
// Basic usage:
//
//	af, err := authfront.New("pk_test_…")
//	if err != nil { … }
//	if err := af.Load(ctx); err != nil { … }
//	defer af.Shutdown()
//
//	af.AddListener(func(client *models.Client, session *models.Session, user *models.User, org *models.Organization) {
//		// react to auth state changes
//	})
//
//	jwt, err := af.GetToken(ctx, "", "")
package authfront

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/authfront/authfront-go/internal/adapter"
	"github.com/authfront/authfront-go/internal/config"
	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/internal/service"
	"github.com/authfront/authfront-go/internal/state"
	"github.com/authfront/authfront-go/models"
	"github.com/authfront/authfront-go/storage"
)

// AuthFront is the SDK facade: thin composition of the sync engine, the
// state store, and the listener registry. Accessors read the local snapshot;
// mutators delegate to the sync engine and return its result unchanged.
//
// An AuthFront value is safe for concurrent use.
type AuthFront struct {
	cfg    *config.Config
	store  storage.Storage
	state  *state.Store
	engine service.Engine
	logger *logger.Logger
}

// New constructs an SDK instance for the given publishable key. The key may
// be empty when the AUTHFRONT_PUBLISHABLE_KEY environment variable or a base
// URL override supplies the instance instead.
func New(publishableKey string, opts ...Option) (*AuthFront, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.LoadWithKey(publishableKey)
	if err != nil {
		// A base URL given as an option satisfies the instance requirement
		// the validation complained about.
		if !(errors.Is(err, config.ErrNoInstance) && o.baseURL != "") {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}
	o.applyConfig(cfg)

	log := o.logger
	if log == nil {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log = logger.NewLogger("authfront", level)
	}

	store := o.storage
	if store == nil {
		if cfg.CacheDSN != "" {
			sqlite, err := storage.NewSQLite(context.Background(), cfg.CacheDSN)
			if err != nil {
				return nil, fmt.Errorf("open cache storage: %w", err)
			}
			store = sqlite
		} else {
			store = storage.NewMemory()
		}
	}

	transport, err := adapter.NewHTTPTransport(cfg, store, o.httpClient, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	registry := state.NewRegistry(log.GetChildLogger())
	st := state.NewStore(store, cfg.KeyPrefix, registry, log.GetChildLogger())
	engine := service.NewEngine(transport, st, store, cfg, log.GetChildLogger())

	return &AuthFront{
		cfg:    cfg,
		store:  store,
		state:  st,
		engine: engine,
		logger: log,
	}, nil
}

// Load initialises the authentication state. A snapshot cached in storage is
// served immediately and revalidated in the background; with a cold cache
// the state is fetched synchronously and a fetch failure fails the Load.
func (a *AuthFront) Load(ctx context.Context) error {
	return a.engine.Load(ctx)
}

// Loaded reports whether the initial Load has completed.
func (a *AuthFront) Loaded() bool {
	return a.engine.Loaded()
}

// Client returns the current client snapshot, or nil until loaded.
func (a *AuthFront) Client() *models.Client {
	return a.state.Client()
}

// Session returns the active session, or nil when none is active.
func (a *AuthFront) Session() *models.Session {
	return a.state.Session()
}

// User returns the user of the active session, or nil.
func (a *AuthFront) User() *models.User {
	return a.state.User()
}

// Organization returns the active organization of the active session, or nil.
func (a *AuthFront) Organization() *models.Organization {
	return a.state.Organization()
}

// Environment returns the instance environment settings, or nil until loaded.
func (a *AuthFront) Environment() *models.Environment {
	return a.state.Environment()
}

// SignIn starts a sign-in attempt with an identifier and, optionally, a
// password. The server's updated client state is applied before returning.
func (a *AuthFront) SignIn(ctx context.Context, params SignInParams) (*models.SignIn, error) {
	return a.engine.SignIn(ctx, params)
}

// AttemptFirstFactor advances the sign-in attempt identified by signInID by
// verifying a first factor.
func (a *AuthFront) AttemptFirstFactor(ctx context.Context, signInID string, params AttemptFactorParams) (*models.SignIn, error) {
	return a.engine.AttemptFirstFactor(ctx, signInID, params)
}

// SetActive switches the active session and/or organization. At least one of
// sessionID and orgIDOrSlug must be non-empty; otherwise ErrNoTarget is
// returned without any network call.
func (a *AuthFront) SetActive(ctx context.Context, sessionID, orgIDOrSlug string) error {
	return a.engine.SetActive(ctx, sessionID, orgIDOrSlug)
}

// SignOut removes the given session, or every session of this client when
// sessionID is empty, and purges cached tokens of the removed sessions.
func (a *AuthFront) SignOut(ctx context.Context, sessionID string) error {
	return a.engine.SignOut(ctx, sessionID)
}

// GetToken returns a session JWT for sessionID (the active session when
// empty), minted from the named template when template is non-empty. A
// cached, non-expired token is returned without a network round trip.
func (a *AuthFront) GetToken(ctx context.Context, sessionID, template string) (string, error) {
	return a.engine.GetToken(ctx, sessionID, template)
}

// AddListener registers fn to be invoked on every state change with the
// post-replacement (client, session, user, organization) tuple. When a
// snapshot already exists, fn is invoked immediately with it.
func (a *AuthFront) AddListener(fn Listener) Handle {
	return a.state.AddListener(fn)
}

// RemoveListener unregisters a listener previously added with AddListener.
func (a *AuthFront) RemoveListener(h Handle) {
	a.state.RemoveListener(h)
}

// Shutdown stops background revalidation tasks and waits for them to exit.
func (a *AuthFront) Shutdown() {
	a.engine.Shutdown()
}
