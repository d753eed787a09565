// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package config

import "errors"

var (
	ErrNoInstance            = errors.New("either publishable key or base URL must be configured")
	ErrInvalidPublishableKey = errors.New("invalid publishable key")
)
