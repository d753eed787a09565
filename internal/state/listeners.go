// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package state

import (
	"sync"

	"github.com/google/uuid"

	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/models"
)

// Listener is a callback observing authentication state changes. All
// arguments except client may be nil: a client with no active session yields
// a nil session, user, and organization.
type Listener func(client *models.Client, session *models.Session, user *models.User, organization *models.Organization)

// Handle identifies a registered listener for later removal.
type Handle string

type listenerEntry struct {
	handle Handle
	fn     Listener
}

// Registry is an ordered collection of listeners. Add and Remove are safe to
// call concurrently with an in-progress notification fan-out: the fan-out
// iterates a copy of the registration list taken when it starts, so a
// listener added mid-fan-out first sees the next notification and a listener
// removed mid-fan-out is not invoked twice for the current one.
type Registry struct {
	mu      sync.Mutex
	entries []listenerEntry

	logger *logger.Logger
}

// NewRegistry returns an empty listener registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{logger: log}
}

// Add registers fn and returns its removal handle. Listeners are notified in
// registration order.
func (r *Registry) Add(fn Listener) Handle {
	h := Handle(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, listenerEntry{handle: h, fn: fn})

	return h
}

// Remove unregisters the listener identified by h. Removing an unknown
// handle is a no-op.
func (r *Registry) Remove(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].handle == h {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Notify invokes every registered listener synchronously, in registration
// order, with the given tuple. A panicking listener is isolated: it is
// logged and the remaining listeners still run.
func (r *Registry) Notify(client *models.Client, session *models.Session, user *models.User, organization *models.Organization) {
	r.mu.Lock()
	snapshot := make([]listenerEntry, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.Unlock()

	for _, entry := range snapshot {
		r.invoke(entry, client, session, user, organization)
	}
}

func (r *Registry) invoke(entry listenerEntry, client *models.Client, session *models.Session, user *models.User, organization *models.Organization) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("listener", string(entry.handle)).
				Any("panic", rec).
				Msg("state listener panicked")
		}
	}()

	entry.fn(client, session, user, organization)
}
