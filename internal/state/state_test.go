// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package state

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/models"
	"github.com/authfront/authfront-go/storage"
)

func newTestStore(t *testing.T) (*Store, storage.Storage) {
	t.Helper()
	mem := storage.NewMemory()
	s := NewStore(mem, "test:", NewRegistry(logger.Nop()), logger.Nop())
	return s, mem
}

func clientWithSession(updatedAt int64) *models.Client {
	org := &models.Organization{ID: "org_1", Slug: "acme"}
	return &models.Client{
		ID: "client_1",
		Sessions: []models.Session{{
			ID:     "sess_1",
			Status: models.SessionActive,
			User: &models.User{
				ID: "user_1",
				OrganizationMemberships: []models.OrganizationMembership{
					{ID: "orgmem_1", Organization: org},
				},
			},
			LastActiveOrganizationID: "org_1",
		}},
		LastActiveSessionID: "sess_1",
		UpdatedAt:           updatedAt,
	}
}

// ── derived accessors ───────────────────────────────────────────────────────

func TestStore_DerivedAccessors(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Nil(t, s.Client())
	assert.Nil(t, s.Session())
	assert.Nil(t, s.User())
	assert.Nil(t, s.Organization())
	assert.Nil(t, s.Environment())

	s.ReplaceClient(clientWithSession(1))

	require.NotNil(t, s.Client())
	assert.Equal(t, "sess_1", s.Session().ID)
	assert.Equal(t, "user_1", s.User().ID)
	assert.Equal(t, "org_1", s.Organization().ID)
}

// ── ReplaceClient ───────────────────────────────────────────────────────────

func TestReplaceClient_ReportsChange(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.ReplaceClient(clientWithSession(1)))

	// same identifier, version, and active session: no change
	assert.False(t, s.ReplaceClient(clientWithSession(1)))

	// bumped version: change
	assert.True(t, s.ReplaceClient(clientWithSession(2)))

	// switched active session: change
	next := clientWithSession(2)
	next.LastActiveSessionID = ""
	assert.True(t, s.ReplaceClient(next))
}

func TestReplaceClient_NotifiesListeners(t *testing.T) {
	s, _ := newTestStore(t)

	var calls int
	var lastSession *models.Session
	s.AddListener(func(c *models.Client, sess *models.Session, u *models.User, o *models.Organization) {
		calls++
		lastSession = sess
	})
	assert.Zero(t, calls, "no snapshot yet, no immediate callback")

	s.ReplaceClient(clientWithSession(1))
	require.Equal(t, 1, calls)
	require.NotNil(t, lastSession)
	assert.Equal(t, "sess_1", lastSession.ID)

	// unchanged snapshot does not notify
	s.ReplaceClient(clientWithSession(1))
	assert.Equal(t, 1, calls)
}

func TestReplaceClient_PersistsSnapshot(t *testing.T) {
	s, mem := newTestStore(t)

	s.ReplaceClient(clientWithSession(7))

	raw, ok := mem.Get("test:client")
	require.True(t, ok)

	var persisted models.Client
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "client_1", persisted.ID)
	assert.EqualValues(t, 7, persisted.UpdatedAt)
}

func TestReplaceClient_PersistFailureIsNotSurfaced(t *testing.T) {
	reg := NewRegistry(logger.Nop())
	s := NewStore(failingStorage{}, "", reg, logger.Nop())

	var notified bool
	reg.Add(func(*models.Client, *models.Session, *models.User, *models.Organization) {
		notified = true
	})

	assert.True(t, s.ReplaceClient(clientWithSession(1)))
	assert.True(t, notified, "listeners still run when persistence fails")
	assert.Equal(t, "client_1", s.Client().ID)
}

func TestReplaceClient_ConcurrentReplaces(t *testing.T) {
	s, _ := newTestStore(t)

	// listener must always observe a coherent tuple, whatever the
	// interleaving of replaces
	s.AddListener(func(c *models.Client, sess *models.Session, u *models.User, o *models.Organization) {
		require.NotNil(t, c)
		if sess != nil {
			require.Equal(t, c.LastActiveSessionID, sess.ID)
		}
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := clientWithSession(int64(n))
			if n%3 == 0 {
				c.LastActiveSessionID = ""
			}
			s.ReplaceClient(c)
		}(i)
	}
	wg.Wait()
}

// ── ReplaceEnvironment ──────────────────────────────────────────────────────

func TestReplaceEnvironment_PersistsWithoutNotifying(t *testing.T) {
	s, mem := newTestStore(t)

	var calls int
	s.AddListener(func(*models.Client, *models.Session, *models.User, *models.Organization) { calls++ })

	s.ReplaceEnvironment(&models.Environment{MaintenanceMode: true})

	require.NotNil(t, s.Environment())
	assert.True(t, s.Environment().MaintenanceMode)
	assert.Zero(t, calls)

	_, ok := mem.Get("test:environment")
	assert.True(t, ok)
}

// ── AddListener / RemoveListener ────────────────────────────────────────────

func TestAddListener_ImmediateCallbackWithExistingSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	s.ReplaceClient(clientWithSession(1))

	var got *models.Client
	s.AddListener(func(c *models.Client, _ *models.Session, _ *models.User, _ *models.Organization) {
		got = c
	})

	require.NotNil(t, got)
	assert.Equal(t, "client_1", got.ID)
}

func TestAddListener_PanicInImmediateCallbackIsIsolated(t *testing.T) {
	s, _ := newTestStore(t)
	s.ReplaceClient(clientWithSession(1))

	require.NotPanics(t, func() {
		s.AddListener(func(*models.Client, *models.Session, *models.User, *models.Organization) {
			panic("listener bug")
		})
	})

	// the store still registers and notifies after the panic
	var calls int
	s.AddListener(func(*models.Client, *models.Session, *models.User, *models.Organization) { calls++ })
	assert.Equal(t, 1, calls, "immediate callback for the existing snapshot")

	s.ReplaceClient(clientWithSession(2))
	assert.Equal(t, 2, calls)
}

func TestRemoveListener_StopsNotifications(t *testing.T) {
	s, _ := newTestStore(t)

	var calls int
	h := s.AddListener(func(*models.Client, *models.Session, *models.User, *models.Organization) { calls++ })

	s.ReplaceClient(clientWithSession(1))
	require.Equal(t, 1, calls)

	s.RemoveListener(h)
	s.ReplaceClient(clientWithSession(2))
	assert.Equal(t, 1, calls)
}

// failingStorage rejects every write.
type failingStorage struct{}

func (failingStorage) Get(string) (string, bool) { return "", false }
func (failingStorage) Set(string, string) error  { return fmt.Errorf("storage unavailable") }
func (failingStorage) Remove(string) error       { return fmt.Errorf("storage unavailable") }
