// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package service

import (
	"sync"
	"time"
)

type cachedToken struct {
	jwt       string
	expiresAt time.Time
}

// tokenCache holds minted session tokens keyed by (session id, template
// name). Entries past their expiry (shortened by the configured leeway) are
// never returned; lookups of expired entries evict them.
type tokenCache struct {
	leeway time.Duration

	mu     sync.Mutex
	tokens map[tokenKey]cachedToken
}

type tokenKey struct {
	sessionID string
	template  string
}

func newTokenCache(leeway time.Duration) *tokenCache {
	return &tokenCache{
		leeway: leeway,
		tokens: make(map[tokenKey]cachedToken),
	}
}

// Get returns the cached token for (sessionID, template) when one exists and
// is still valid at now.
func (c *tokenCache) Get(sessionID, template string, now time.Time) (string, bool) {
	key := tokenKey{sessionID: sessionID, template: template}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.tokens[key]
	if !ok {
		return "", false
	}
	if !now.Before(entry.expiresAt.Add(-c.leeway)) {
		delete(c.tokens, key)
		return "", false
	}
	return entry.jwt, true
}

// Put stores jwt for (sessionID, template) until expiresAt.
func (c *tokenCache) Put(sessionID, template, jwt string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[tokenKey{sessionID: sessionID, template: template}] = cachedToken{jwt: jwt, expiresAt: expiresAt}
}

// PurgeSession drops every cached token of the given session.
func (c *tokenCache) PurgeSession(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.tokens {
		if key.sessionID == sessionID {
			delete(c.tokens, key)
		}
	}
}

// RetainSessions drops cached tokens of every session not present in live.
func (c *tokenCache) RetainSessions(live map[string]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.tokens {
		if _, ok := live[key.sessionID]; !ok {
			delete(c.tokens, key)
		}
	}
}

// PurgeAll empties the cache.
func (c *tokenCache) PurgeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = make(map[tokenKey]cachedToken)
}
