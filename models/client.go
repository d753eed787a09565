// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// Client is the root snapshot of multi-session device state as returned by
// the frontend API. It is replaced wholesale on every refresh — individual
// fields are never mutated in place — so a *Client held by a caller is safe
// to read without synchronisation.
type Client struct {
	// ID is the server-assigned client identifier (dvc_… / client_…).
	ID string `json:"id"`

	// Object is the resource discriminator, always "client".
	Object string `json:"object"`

	// Sessions is the ordered list of sessions known for this device.
	Sessions []Session `json:"sessions"`

	// SignIn is the in-progress sign-in attempt, if any.
	SignIn *SignIn `json:"sign_in,omitempty"`

	// LastActiveSessionID designates the active session by identifier.
	// It refers to an entry of Sessions; if the identifier is absent from
	// Sessions, there is no active session.
	LastActiveSessionID string `json:"last_active_session_id,omitempty"`

	// CreatedAt and UpdatedAt are Unix epoch milliseconds. UpdatedAt is
	// the snapshot version used for change detection.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// SessionByID returns the session with the given identifier, or nil if the
// client holds no such session.
func (c *Client) SessionByID(id string) *Session {
	if c == nil || id == "" {
		return nil
	}
	for i := range c.Sessions {
		if c.Sessions[i].ID == id {
			return &c.Sessions[i]
		}
	}
	return nil
}

// ActiveSession resolves LastActiveSessionID against Sessions. It returns nil
// when no session is designated or the designated identifier is not a member
// of the current session list.
func (c *Client) ActiveSession() *Session {
	if c == nil {
		return nil
	}
	return c.SessionByID(c.LastActiveSessionID)
}
