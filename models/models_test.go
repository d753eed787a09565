// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	org := &Organization{ID: "org_1", Slug: "acme", Name: "Acme"}
	user := &User{
		ID: "user_1",
		OrganizationMemberships: []OrganizationMembership{
			{ID: "orgmem_1", Role: "admin", Organization: org},
		},
	}
	return &Client{
		ID: "client_1",
		Sessions: []Session{
			{ID: "sess_1", Status: SessionActive, User: user},
			{ID: "sess_2", Status: SessionPending},
		},
		LastActiveSessionID: "sess_1",
	}
}

// ── Client ──────────────────────────────────────────────────────────────────

func TestClient_SessionByID(t *testing.T) {
	c := testClient()

	got := c.SessionByID("sess_2")
	require.NotNil(t, got)
	assert.Equal(t, "sess_2", got.ID)

	assert.Nil(t, c.SessionByID("sess_missing"))
	assert.Nil(t, c.SessionByID(""))

	var nilClient *Client
	assert.Nil(t, nilClient.SessionByID("sess_1"))
}

func TestClient_ActiveSession(t *testing.T) {
	c := testClient()

	got := c.ActiveSession()
	require.NotNil(t, got)
	assert.Equal(t, "sess_1", got.ID)
}

func TestClient_ActiveSession_NoneDesignated(t *testing.T) {
	c := testClient()
	c.LastActiveSessionID = ""

	assert.Nil(t, c.ActiveSession())

	var nilClient *Client
	assert.Nil(t, nilClient.ActiveSession())
}

// ── Session / User ──────────────────────────────────────────────────────────

func TestSession_ActiveOrganization(t *testing.T) {
	c := testClient()
	sess := c.SessionByID("sess_1")
	sess.LastActiveOrganizationID = "org_1"

	got := sess.ActiveOrganization()
	require.NotNil(t, got)
	assert.Equal(t, "acme", got.Slug)
}

func TestSession_ActiveOrganization_NotAMember(t *testing.T) {
	c := testClient()
	sess := c.SessionByID("sess_1")
	sess.LastActiveOrganizationID = "org_unknown"

	assert.Nil(t, sess.ActiveOrganization())
}

func TestSession_ActiveOrganization_NoUser(t *testing.T) {
	sess := &Session{ID: "sess_x", LastActiveOrganizationID: "org_1"}
	assert.Nil(t, sess.ActiveOrganization())
}

func TestUser_MembershipBySlug(t *testing.T) {
	user := testClient().Sessions[0].User

	m := user.MembershipBySlug("acme")
	require.NotNil(t, m)
	assert.Equal(t, "admin", m.Role)

	assert.Nil(t, user.MembershipBySlug("globex"))
	assert.Nil(t, user.MembershipBySlug(""))
}

// ── Token ───────────────────────────────────────────────────────────────────

func tokenWithExp(t *testing.T, exp any) *Token {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	claims := map[string]any{"sub": "user_1"}
	if exp != nil {
		claims["exp"] = exp
	}
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return &Token{Object: "token", JWT: enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."}
}

func TestToken_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Minute).Unix()
	token := tokenWithExp(t, exp)

	got, err := token.ExpiresAt()
	require.NoError(t, err)
	assert.Equal(t, exp, got.Unix())
}

func TestToken_ExpiresAt_NoClaim(t *testing.T) {
	token := tokenWithExp(t, nil)

	_, err := token.ExpiresAt()
	require.Error(t, err)
}

func TestToken_ExpiresAt_Malformed(t *testing.T) {
	token := &Token{JWT: "not-a-jwt"}

	_, err := token.ExpiresAt()
	require.Error(t, err)
}
