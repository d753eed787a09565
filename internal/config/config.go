// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package config loads and validates SDK configuration. Values are merged
// from three sources, in increasing priority: defaults, environment
// variables (prefix AUTHFRONT_), and an optional JSON file named by the
// AUTHFRONT_CONFIG variable or supplied programmatically.
package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Config is the top-level SDK configuration.
//
// Struct tags:
//   - env  — environment variable name (caarlos0/env, prefix AUTHFRONT_).
//   - json — key in the optional JSON configuration file.
type Config struct {
	// PublishableKey identifies the frontend API instance. The frontend
	// domain is encoded in the key (pk_test_… / pk_live_…), so BaseURL can
	// usually be left empty.
	PublishableKey string `env:"PUBLISHABLE_KEY" json:"publishable_key"`

	// BaseURL overrides the frontend API origin derived from the
	// publishable key. Mostly useful against local or mocked instances.
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// KeyPrefix namespaces all persisted cache keys, allowing several SDK
	// instances to share one storage backend.
	KeyPrefix string `env:"KEY_PREFIX" json:"key_prefix"`

	// CacheDSN, when non-empty, selects the SQLite storage backend with the
	// given database path. Empty means the volatile in-memory store.
	CacheDSN string `env:"CACHE_DSN" json:"cache_dsn"`

	// RequestTimeout is the per-request timeout of the HTTP transport.
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// RevalidateInterval is the retry interval of the background
	// revalidation task after a failed refresh.
	RevalidateInterval Duration `env:"REVALIDATE_INTERVAL" json:"revalidate_interval"`

	// TokenLeeway is subtracted from a cached token's expiry so tokens are
	// refreshed slightly before they actually expire.
	TokenLeeway Duration `env:"TOKEN_LEEWAY" json:"token_leeway"`

	// LogLevel is a zerolog level string ("debug", "info", "warn", …).
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// JSONFilePath is the optional path to a JSON configuration file that is
	// merged on top of defaults and environment values.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

func defaults() *Config {
	return &Config{
		RequestTimeout:     Duration(15 * time.Second),
		RevalidateInterval: Duration(15 * time.Minute),
		TokenLeeway:        Duration(10 * time.Second),
		LogLevel:           "info",
	}
}

func (c *Config) validate() error {
	if c.PublishableKey == "" && c.BaseURL == "" {
		return ErrNoInstance
	}
	if c.PublishableKey != "" {
		if _, err := FrontendDomain(c.PublishableKey); err != nil {
			return err
		}
	}
	return nil
}

// FrontendAPIURL resolves the origin of the frontend API: the explicit
// BaseURL when set, otherwise https://<domain> with the domain decoded from
// the publishable key.
func (c *Config) FrontendAPIURL() (string, error) {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/"), nil
	}
	domain, err := FrontendDomain(c.PublishableKey)
	if err != nil {
		return "", err
	}
	return "https://" + domain, nil
}

// FrontendDomain decodes the frontend API domain embedded in a publishable
// key. The key format is pk_<env>_<base64 of "domain$">.
func FrontendDomain(key string) (string, error) {
	var encoded string
	switch {
	case strings.HasPrefix(key, "pk_test_"):
		encoded = strings.TrimPrefix(key, "pk_test_")
	case strings.HasPrefix(key, "pk_live_"):
		encoded = strings.TrimPrefix(key, "pk_live_")
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPublishableKey, key)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Keys in the wild appear both padded and unpadded.
		decoded, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidPublishableKey, err)
		}
	}

	domain := strings.TrimSuffix(string(decoded), "$")
	if domain == "" {
		return "", ErrInvalidPublishableKey
	}
	return domain, nil
}
