// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// SessionStatus enumerates the lifecycle states a session can be in.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPending   SessionStatus = "pending"
	SessionExpired   SessionStatus = "expired"
	SessionRemoved   SessionStatus = "removed"
	SessionEnded     SessionStatus = "ended"
	SessionRevoked   SessionStatus = "revoked"
	SessionAbandoned SessionStatus = "abandoned"
	SessionReplaced  SessionStatus = "replaced"
)

// Session is one authenticated login instance within a Client.
type Session struct {
	// ID is the server-assigned session identifier (sess_…).
	ID string `json:"id"`

	// Object is the resource discriminator, always "session".
	Object string `json:"object"`

	// Status is the lifecycle state of the session.
	Status SessionStatus `json:"status"`

	// User is the authenticated principal. The same User may be referenced
	// by multiple sessions of one client.
	User *User `json:"user,omitempty"`

	// LastActiveOrganizationID selects the active organization context from
	// the user's memberships; empty means no organization is active.
	LastActiveOrganizationID string `json:"last_active_organization_id,omitempty"`

	// LastActiveToken is the most recently minted session token, when the
	// server chose to piggyback one on the session resource.
	LastActiveToken *Token `json:"last_active_token,omitempty"`

	LastActiveAt int64 `json:"last_active_at"`
	ExpireAt     int64 `json:"expire_at"`
	AbandonAt    int64 `json:"abandon_at"`
	CreatedAt    int64 `json:"created_at"`
	UpdatedAt    int64 `json:"updated_at"`
}

// ActiveOrganization derives the active organization for the session from the
// user's membership list. It is a pure function of the snapshot: the result is
// never stored independently. Returns nil when the session has no active
// organization, no user, or the designated organization is not among the
// user's memberships.
func (s *Session) ActiveOrganization() *Organization {
	if s == nil || s.User == nil || s.LastActiveOrganizationID == "" {
		return nil
	}
	if m := s.User.MembershipByOrganizationID(s.LastActiveOrganizationID); m != nil {
		return m.Organization
	}
	return nil
}
