// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags with the AUTHFRONT_
// prefix applied.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "AUTHFRONT_"}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
