// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package authfront_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authfront "github.com/authfront/authfront-go"
	"github.com/authfront/authfront-go/internal/fapitest"
	"github.com/authfront/authfront-go/models"
	"github.com/authfront/authfront-go/storage"
)

func signedInClient() *models.Client {
	return &models.Client{
		ID:     "client_1",
		Object: "client",
		Sessions: []models.Session{{
			ID:     "sess_1",
			Status: models.SessionActive,
			User:   &models.User{ID: "user_1", Object: "user"},
		}},
		LastActiveSessionID: "sess_1",
		UpdatedAt:           1,
	}
}

func newTestSDK(t *testing.T, srv *fapitest.Server, store storage.Storage) *authfront.AuthFront {
	t.Helper()

	af, err := authfront.New("",
		authfront.WithBaseURL(srv.URL()),
		authfront.WithStorage(store),
		authfront.WithLogger(zerolog.Nop()),
		authfront.WithRevalidateInterval(10*time.Millisecond),
	)
	require.NoError(t, err)
	t.Cleanup(af.Shutdown)
	return af
}

// ── Load and snapshot accessors ─────────────────────────────────────────────

func TestAuthFront_LoadColdAndAccessors(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())

	assert.False(t, af.Loaded())
	assert.Nil(t, af.Client())

	require.NoError(t, af.Load(context.Background()))

	assert.True(t, af.Loaded())
	require.NotNil(t, af.Client())
	assert.Equal(t, "client_1", af.Client().ID)
	assert.Equal(t, "sess_1", af.Session().ID)
	assert.Equal(t, "user_1", af.User().ID)
	assert.Nil(t, af.Organization())
	require.NotNil(t, af.Environment())

	assert.Equal(t, 1, srv.Calls("GET /v1/client"))
	assert.Equal(t, 1, srv.Calls("GET /v1/environment"))
}

func TestAuthFront_WarmStartServesCacheWithoutWaiting(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	store := storage.NewMemory()

	first := newTestSDK(t, srv, store)
	require.NoError(t, first.Load(context.Background()))
	first.Shutdown()

	// the second instance starts from the persisted snapshot
	second := newTestSDK(t, srv, store)
	require.NoError(t, second.Load(context.Background()))

	assert.True(t, second.Loaded())
	require.NotNil(t, second.Client())
	assert.Equal(t, "client_1", second.Client().ID)
}

func TestAuthFront_DeviceTokenPersisted(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	store := storage.NewMemory()
	af := newTestSDK(t, srv, store)
	require.NoError(t, af.Load(context.Background()))

	persisted, ok := store.Get("authorization")
	require.True(t, ok)
	assert.Equal(t, fapitest.DeviceToken, persisted)
}

// ── sign-in flow ────────────────────────────────────────────────────────────

func TestAuthFront_PasswordSignInFlow(t *testing.T) {
	srv := fapitest.NewServer(nil, nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	assert.Nil(t, af.Session())

	var notifications int
	af.AddListener(func(c *models.Client, s *models.Session, u *models.User, o *models.Organization) {
		notifications++
	})

	signIn, err := af.SignIn(context.Background(), authfront.SignInParams{
		Identifier: "alice@example.com",
		Password:   "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SignInComplete, signIn.Status)
	assert.NotEmpty(t, signIn.CreatedSessionID)

	// the piggybacked client made the new session active locally
	require.NotNil(t, af.Session())
	assert.Equal(t, signIn.CreatedSessionID, af.Session().ID)
	assert.Equal(t, "user_1", af.User().ID)
	assert.GreaterOrEqual(t, notifications, 1)
}

func TestAuthFront_TwoStepSignInFlow(t *testing.T) {
	srv := fapitest.NewServer(nil, nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	signIn, err := af.SignIn(context.Background(), authfront.SignInParams{Identifier: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.SignInNeedsFirstFactor, signIn.Status)
	assert.Nil(t, af.Session())

	completed, err := af.AttemptFirstFactor(context.Background(), signIn.ID, authfront.AttemptFactorParams{
		Strategy: "email_code",
		Code:     "424242",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SignInComplete, completed.Status)
	require.NotNil(t, af.Session())
	assert.Equal(t, completed.CreatedSessionID, af.Session().ID)
}

func TestAuthFront_SignInRejectedByServer(t *testing.T) {
	srv := fapitest.NewServer(nil, nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	_, err := af.SignIn(context.Background(), authfront.SignInParams{Identifier: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, authfront.ErrUnprocessable)

	var apiErr *authfront.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.HasCode("form_param_missing"))
}

// ── tokens ──────────────────────────────────────────────────────────────────

func TestAuthFront_GetTokenIsCached(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	srv.SetTokenTTL(time.Hour)

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	first, err := af.GetToken(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := af.GetToken(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, srv.Calls("POST tokens"), "second token came from the cache")

	// a templated token is a distinct cache entry
	templated, err := af.GetToken(context.Background(), "", "supabase")
	require.NoError(t, err)
	assert.NotEqual(t, first, templated)
	assert.Equal(t, 2, srv.Calls("POST tokens"))
}

// ── set-active and sign-out ─────────────────────────────────────────────────

func TestAuthFront_SetActiveNoTarget(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	err := af.SetActive(context.Background(), "", "")
	assert.ErrorIs(t, err, authfront.ErrNoTarget)
	assert.Zero(t, srv.Calls("POST touch"))
}

func TestAuthFront_SignOutSingleSession(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))
	require.NotNil(t, af.Session())

	var lastSession *models.Session
	af.AddListener(func(c *models.Client, s *models.Session, u *models.User, o *models.Organization) {
		lastSession = s
	})

	require.NoError(t, af.SignOut(context.Background(), "sess_1"))

	assert.Nil(t, af.Session())
	assert.Nil(t, af.User())
	assert.Nil(t, lastSession, "listener observed the signed-out state")
	assert.Equal(t, 1, srv.Calls("POST remove"))
}

func TestAuthFront_SignOutAllSessions(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	require.NoError(t, af.SignOut(context.Background(), ""))

	assert.Nil(t, af.Session())
	require.NotNil(t, af.Client(), "the client survives a full sign-out")
	assert.Empty(t, af.Client().Sessions)
	assert.Equal(t, 1, srv.Calls("DELETE sessions"))
}

// ── listeners ───────────────────────────────────────────────────────────────

func TestAuthFront_ListenerImmediateCallbackAndRemoval(t *testing.T) {
	srv := fapitest.NewServer(signedInClient(), nil)
	defer srv.Close()

	af := newTestSDK(t, srv, storage.NewMemory())
	require.NoError(t, af.Load(context.Background()))

	var calls int
	h := af.AddListener(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		calls++
	})
	assert.Equal(t, 1, calls, "existing snapshot triggers an immediate callback")

	af.RemoveListener(h)
	require.NoError(t, af.SignOut(context.Background(), ""))
	assert.Equal(t, 1, calls)
}
