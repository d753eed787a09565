// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package state owns the locally cached authentication snapshot: the current
// Client, the environment, and the listener registry observing changes.
//
// Snapshot replacement is the single serialization point of the SDK: a
// replace fully completes — swap, storage write-back, listener fan-out —
// before the next replace begins, so listeners always observe monotonically
// non-decreasing state and never a half-updated snapshot. Background
// revalidation and foreground post-mutation syncs both funnel through it.
package state

import (
	"encoding/json"
	"sync"

	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/models"
	"github.com/authfront/authfront-go/storage"
)

// Storage keys, namespaced by the configured key prefix.
const (
	ClientKey      = "client"
	EnvironmentKey = "environment"
)

// Store holds the current Client snapshot and derived views behind a
// read/write lock, persists replacements to the configured storage, and
// fans out change notifications.
type Store struct {
	// replaceMu serializes whole replace cycles (swap + persist + notify).
	replaceMu sync.Mutex

	mu          sync.RWMutex
	client      *models.Client
	environment *models.Environment

	store     storage.Storage
	keyPrefix string
	registry  *Registry
	logger    *logger.Logger
}

// NewStore builds a Store persisting snapshots to store under keyPrefix and
// notifying listeners registered on registry.
func NewStore(store storage.Storage, keyPrefix string, registry *Registry, log *logger.Logger) *Store {
	return &Store{
		store:     store,
		keyPrefix: keyPrefix,
		registry:  registry,
		logger:    log,
	}
}

// Client returns the current snapshot, or nil before the first replace.
func (s *Store) Client() *models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

// Session returns the active session derived from the current snapshot, or
// nil when no session is active.
func (s *Store) Session() *models.Session {
	return s.Client().ActiveSession()
}

// User returns the user of the active session, or nil.
func (s *Store) User() *models.User {
	if session := s.Session(); session != nil {
		return session.User
	}
	return nil
}

// Organization returns the active organization of the active session, or nil.
func (s *Store) Organization() *models.Organization {
	return s.Session().ActiveOrganization()
}

// Environment returns the cached environment, or nil before the first load.
func (s *Store) Environment() *models.Environment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.environment
}

// ReplaceClient atomically swaps the snapshot for client and reports whether
// the new snapshot differs semantically (identifier or version) from the
// previous one. On change the serialized snapshot is written back to storage
// (best effort: a persistence failure is logged, never surfaced) and all
// listeners are notified with the post-replacement tuple.
//
// Replace cycles are strictly serialized: the swap, write-back, and listener
// fan-out of one call complete before the next call proceeds.
func (s *Store) ReplaceClient(client *models.Client) bool {
	s.replaceMu.Lock()
	defer s.replaceMu.Unlock()

	s.mu.Lock()
	previous := s.client
	s.client = client
	s.mu.Unlock()

	if !snapshotChanged(previous, client) {
		return false
	}

	s.persist(ClientKey, client)

	session := client.ActiveSession()
	var user *models.User
	if session != nil {
		user = session.User
	}
	s.registry.Notify(client, session, user, session.ActiveOrganization())

	return true
}

// ReplaceEnvironment swaps the cached environment and persists it. The
// environment is not part of the listener tuple, so no notification is sent.
func (s *Store) ReplaceEnvironment(env *models.Environment) {
	s.mu.Lock()
	s.environment = env
	s.mu.Unlock()

	s.persist(EnvironmentKey, env)
}

// AddListener registers fn and, when a snapshot is already present, invokes
// it immediately with the current tuple so late subscribers do not miss the
// existing state. Registration runs under the replace lock, so the immediate
// callback and the fan-out of a concurrent replace never deliver the same
// snapshot twice; a panic in the immediate callback is isolated like one in
// a fan-out.
func (s *Store) AddListener(fn Listener) Handle {
	s.replaceMu.Lock()
	defer s.replaceMu.Unlock()

	h := s.registry.Add(fn)

	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client != nil {
		session := client.ActiveSession()
		var user *models.User
		if session != nil {
			user = session.User
		}
		s.registry.invoke(listenerEntry{handle: h, fn: fn}, client, session, user, session.ActiveOrganization())
	}

	return h
}

// RemoveListener unregisters the listener identified by h.
func (s *Store) RemoveListener(h Handle) {
	s.registry.Remove(h)
}

func (s *Store) persist(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to serialize snapshot for persistence")
		return
	}
	if err = s.store.Set(s.keyPrefix+key, string(raw)); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to persist snapshot")
	}
}

// snapshotChanged compares snapshots by identifier and version, not by
// pointer identity.
func snapshotChanged(previous, next *models.Client) bool {
	if previous == nil || next == nil {
		return previous != next
	}
	return previous.ID != next.ID ||
		previous.UpdatedAt != next.UpdatedAt ||
		previous.LastActiveSessionID != next.LastActiveSessionID
}
