// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package service implements the synchronisation engine that keeps the local
// authentication snapshot consistent with the remote frontend API.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/authfront/authfront-go/internal/adapter"
	"github.com/authfront/authfront-go/internal/config"
	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/internal/state"
	"github.com/authfront/authfront-go/models"
	"github.com/authfront/authfront-go/storage"
)

// Load phases. The tagged phase plus lastRevalidatedAt replace ad hoc
// booleans: Loaded means phase >= phaseLoadedStale.
const (
	phaseUnloaded int32 = iota
	phaseLoading
	phaseLoadedStale
	phaseLoadedFresh
)

type syncEngine struct {
	transport adapter.Transport
	state     *state.Store
	store     storage.Storage
	tokens    *tokenCache
	logger    *logger.Logger

	keyPrefix          string
	revalidateInterval time.Duration

	// loadMu serializes Load calls so a concurrent caller blocks until the
	// in-flight attempt finishes instead of returning before state exists.
	loadMu sync.Mutex

	phase atomic.Int32
	// staleResources counts cached resources awaiting background
	// revalidation; the snapshot is fresh once it reaches zero.
	staleResources atomic.Int32

	mu                sync.Mutex
	lastRevalidatedAt time.Time

	// lifecycle of fire-and-forget background tasks; cancelled by Shutdown.
	lifecycleCtx context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewEngine wires a sync engine over the given transport, state store, and
// persistence backend.
func NewEngine(transport adapter.Transport, st *state.Store, store storage.Storage, cfg *config.Config, log *logger.Logger) Engine {
	ctx, cancel := context.WithCancel(context.Background())

	return &syncEngine{
		transport:          transport,
		state:              st,
		store:              store,
		tokens:             newTokenCache(cfg.TokenLeeway.Std()),
		logger:             log,
		keyPrefix:          cfg.KeyPrefix,
		revalidateInterval: cfg.RevalidateInterval.Std(),
		lifecycleCtx:       ctx,
		cancel:             cancel,
	}
}

// Load implements [Engine]. A snapshot found in storage is applied
// immediately (optimistic availability) and revalidated in the background;
// otherwise the snapshot is fetched synchronously and a transport failure is
// fatal to this Load call. Load returns only once state — cached or fresh —
// is available: a concurrent caller waits for the in-flight attempt, then
// either observes its result or, if it failed, performs its own attempt.
func (e *syncEngine) Load(ctx context.Context) error {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	if e.Loaded() {
		return nil
	}
	e.phase.Store(phaseLoading)

	refreshEnv, err := e.loadEnvironment(ctx)
	if err != nil {
		e.phase.Store(phaseUnloaded)
		return err
	}

	refreshClient, err := e.loadClient(ctx)
	if err != nil {
		e.phase.Store(phaseUnloaded)
		return err
	}

	stale := int32(0)
	if refreshEnv != nil {
		stale++
	}
	if refreshClient != nil {
		stale++
	}
	if stale == 0 {
		e.markFresh()
		return nil
	}

	// Revalidation tasks start only after both cache decisions are made, so
	// the stale count never reaches zero with a resource unaccounted for.
	e.staleResources.Store(stale)
	e.phase.Store(phaseLoadedStale)
	if refreshEnv != nil {
		e.revalidateLater("environment", refreshEnv)
	}
	if refreshClient != nil {
		e.revalidateLater("client", refreshClient)
	}

	return nil
}

// loadEnvironment applies a cached environment when one deserializes and
// returns the refresh task to schedule for it; otherwise it fetches
// synchronously and returns no task. Storage failures degrade to a cache
// miss.
func (e *syncEngine) loadEnvironment(ctx context.Context) (revalidate refreshFunc, err error) {
	if raw, ok := e.store.Get(e.keyPrefix + state.EnvironmentKey); ok {
		var cached models.Environment
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			e.state.ReplaceEnvironment(&cached)
			return e.refreshEnvironment, nil
		}
		e.logger.Warn().Msg("discarding undecodable cached environment")
	}

	env, err := e.transport.GetEnvironment(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch environment: %w", err)
	}
	e.state.ReplaceEnvironment(env)

	return nil, nil
}

// loadClient mirrors loadEnvironment for the client snapshot.
func (e *syncEngine) loadClient(ctx context.Context) (revalidate refreshFunc, err error) {
	if raw, ok := e.store.Get(e.keyPrefix + state.ClientKey); ok {
		var cached models.Client
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			e.applyClient(&cached)
			return e.refreshClient, nil
		}
		e.logger.Warn().Msg("discarding undecodable cached client")
	}

	client, err := e.transport.GetClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch client: %w", err)
	}
	if client != nil {
		e.applyClient(client)
	}

	return nil, nil
}

// Loaded implements [Engine].
func (e *syncEngine) Loaded() bool {
	return e.phase.Load() >= phaseLoadedStale
}

// SignIn implements [Engine].
func (e *syncEngine) SignIn(ctx context.Context, params adapter.SignInParams) (*models.SignIn, error) {
	if !e.Loaded() {
		return nil, ErrNotLoaded
	}

	signIn, piggyback, err := e.transport.CreateSignIn(ctx, params)
	if err != nil {
		return nil, err
	}
	if err = e.applyAuthoritative(ctx, piggyback); err != nil {
		return signIn, err
	}
	return signIn, nil
}

// AttemptFirstFactor implements [Engine].
func (e *syncEngine) AttemptFirstFactor(ctx context.Context, signInID string, params adapter.AttemptFactorParams) (*models.SignIn, error) {
	if !e.Loaded() {
		return nil, ErrNotLoaded
	}

	signIn, piggyback, err := e.transport.AttemptSignInFirstFactor(ctx, signInID, params)
	if err != nil {
		return nil, err
	}
	if err = e.applyAuthoritative(ctx, piggyback); err != nil {
		return signIn, err
	}
	return signIn, nil
}

// SetActive implements [Engine]. It validates the targets against the current
// snapshot before issuing any network call: an unknown session or
// organization never reaches the server.
func (e *syncEngine) SetActive(ctx context.Context, sessionID, orgIDOrSlug string) error {
	if !e.Loaded() {
		return ErrNotLoaded
	}
	if sessionID == "" && orgIDOrSlug == "" {
		return ErrNoTarget
	}

	client := e.state.Client()
	if client == nil {
		return ErrNotLoaded
	}

	target, err := resolveTargetSession(client, sessionID)
	if err != nil {
		return err
	}

	organizationID := ""
	if orgIDOrSlug != "" {
		organizationID, err = resolveOrganizationID(target, orgIDOrSlug)
		if err != nil {
			return err
		}
	}

	_, piggyback, err := e.transport.TouchSession(ctx, target.ID, organizationID)
	if err != nil {
		return err
	}

	// Previously minted tokens may be scoped to the old session/organization
	// context.
	e.tokens.PurgeSession(target.ID)

	return e.applyAuthoritative(ctx, piggyback)
}

// SignOut implements [Engine].
func (e *syncEngine) SignOut(ctx context.Context, sessionID string) error {
	if !e.Loaded() {
		return ErrNotLoaded
	}

	var piggyback *models.Client
	var err error

	if sessionID != "" {
		_, piggyback, err = e.transport.RemoveSession(ctx, sessionID)
		if err != nil {
			return err
		}
		e.tokens.PurgeSession(sessionID)
	} else {
		piggyback, err = e.transport.RemoveClientSessions(ctx)
		if err != nil {
			return err
		}
		e.tokens.PurgeAll()
	}

	return e.applyAuthoritative(ctx, piggyback)
}

// GetToken implements [Engine].
func (e *syncEngine) GetToken(ctx context.Context, sessionID, template string) (string, error) {
	if !e.Loaded() {
		return "", ErrNotLoaded
	}

	if sessionID == "" {
		session := e.state.Session()
		if session == nil {
			return "", ErrNoActiveSession
		}
		sessionID = session.ID
	}

	if jwt, ok := e.tokens.Get(sessionID, template, time.Now()); ok {
		return jwt, nil
	}

	var token *models.Token
	var err error
	if template != "" {
		token, err = e.transport.CreateSessionTokenWithTemplate(ctx, sessionID, template)
	} else {
		token, err = e.transport.CreateSessionToken(ctx, sessionID, "")
	}
	if err != nil {
		return "", err
	}

	if expiresAt, expErr := token.ExpiresAt(); expErr == nil {
		e.tokens.Put(sessionID, template, token.JWT, expiresAt)
	} else {
		// An unparsable expiry only disables caching for this token.
		e.logger.Debug().Err(expErr).Msg("minted token has no usable expiry, not caching")
	}

	return token.JWT, nil
}

// Shutdown implements [Engine].
func (e *syncEngine) Shutdown() {
	e.cancel()
	e.wg.Wait()
}

// applyClient applies an authoritative snapshot: cached tokens of sessions
// that are gone or no longer usable are purged, then the snapshot is swapped
// in (persisting and notifying as needed).
func (e *syncEngine) applyClient(client *models.Client) {
	live := make(map[string]struct{}, len(client.Sessions))
	for i := range client.Sessions {
		s := &client.Sessions[i]
		if s.Status == models.SessionActive || s.Status == models.SessionPending {
			live[s.ID] = struct{}{}
		}
	}
	e.tokens.RetainSessions(live)

	e.state.ReplaceClient(client)
}

// applyAuthoritative performs the post-mutation sync: the piggybacked client
// from a mutating call is applied; when the server did not piggyback one,
// the client is re-fetched so the local cache cannot diverge from server
// truth. The mutation itself has already succeeded, so a refresh failure is
// surfaced without rolling anything back.
func (e *syncEngine) applyAuthoritative(ctx context.Context, piggyback *models.Client) error {
	if piggyback == nil {
		fresh, err := e.transport.GetClient(ctx)
		if err != nil {
			return fmt.Errorf("refresh client after mutation: %w", err)
		}
		piggyback = fresh
	}
	if piggyback != nil {
		e.applyClient(piggyback)
	}
	return nil
}

func (e *syncEngine) markFresh() {
	e.phase.Store(phaseLoadedFresh)
	e.mu.Lock()
	e.lastRevalidatedAt = time.Now()
	e.mu.Unlock()
}

// LastRevalidatedAt returns when the snapshot was last confirmed against the
// server, or the zero time if it never was.
func (e *syncEngine) LastRevalidatedAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastRevalidatedAt
}

func resolveTargetSession(client *models.Client, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		if session := client.ActiveSession(); session != nil {
			return session, nil
		}
		return nil, ErrNoActiveSession
	}
	if session := client.SessionByID(sessionID); session != nil {
		return session, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
}

// resolveOrganizationID maps an organization id or slug onto an organization
// identifier present in the target session user's memberships.
func resolveOrganizationID(session *models.Session, orgIDOrSlug string) (string, error) {
	if session.User == nil {
		return "", ErrNoUserOnSession
	}

	if strings.HasPrefix(orgIDOrSlug, "org_") {
		if m := session.User.MembershipByOrganizationID(orgIDOrSlug); m != nil {
			return orgIDOrSlug, nil
		}
		return "", fmt.Errorf("%w: %s", ErrOrganizationNotFound, orgIDOrSlug)
	}

	if m := session.User.MembershipBySlug(orgIDOrSlug); m != nil && m.Organization != nil {
		return m.Organization.ID, nil
	}
	return "", fmt.Errorf("%w: %s", ErrOrganizationNotFound, orgIDOrSlug)
}
