// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package authfront

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/authfront/authfront-go/internal/config"
	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/storage"
)

// Option customises an AuthFront instance at construction time. Options take
// precedence over configuration loaded from the environment and from the
// optional JSON config file.
type Option func(*options)

type options struct {
	storage    storage.Storage
	httpClient *http.Client
	logger     *logger.Logger

	baseURL            string
	keyPrefix          string
	cacheDSN           string
	requestTimeout     time.Duration
	revalidateInterval time.Duration
	tokenLeeway        time.Duration
}

func (o *options) applyConfig(cfg *config.Config) {
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.keyPrefix != "" {
		cfg.KeyPrefix = o.keyPrefix
	}
	if o.cacheDSN != "" {
		cfg.CacheDSN = o.cacheDSN
	}
	if o.requestTimeout > 0 {
		cfg.RequestTimeout = config.Duration(o.requestTimeout)
	}
	if o.revalidateInterval > 0 {
		cfg.RevalidateInterval = config.Duration(o.revalidateInterval)
	}
	if o.tokenLeeway > 0 {
		cfg.TokenLeeway = config.Duration(o.tokenLeeway)
	}
}

// WithStorage supplies the persistence backend for cached state. Defaults to
// a SQLite store when a cache DSN is configured, in-memory otherwise.
func WithStorage(s storage.Storage) Option {
	return func(o *options) { o.storage = s }
}

// WithHTTPClient supplies the *http.Client the default transport is built
// on, for custom proxies or instrumented round trippers.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger supplies the zerolog logger used by every component of the
// instance. Defaults to a JSON logger on stderr at the configured level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger.Logger{Logger: l} }
}

// WithBaseURL overrides the frontend API base URL, bypassing the domain
// derived from the publishable key.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithKeyPrefix namespaces every storage key written by this instance.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) { o.keyPrefix = prefix }
}

// WithCacheDSN selects the SQLite file backing the persistent cache.
func WithCacheDSN(dsn string) Option {
	return func(o *options) { o.cacheDSN = dsn }
}

// WithRequestTimeout bounds every HTTP request made by the instance.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithRevalidateInterval sets the retry interval for background
// revalidation of stale cached state.
func WithRevalidateInterval(d time.Duration) Option {
	return func(o *options) { o.revalidateInterval = d }
}

// WithTokenLeeway sets how long before its expiry a cached session token is
// already treated as expired.
func WithTokenLeeway(d time.Duration) Option {
	return func(o *options) { o.tokenLeeway = d }
}
