// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package config

import (
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

// build merges the collected configs in reverse collection order so sources
// added later take priority. Validation is left to the callers so that
// programmatic overrides can be applied to the merged result first.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for i := len(b.configs) - 1; i >= 0; i-- {
		if err := mergo.Merge(config, b.configs[i]); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := new(Config)
	if err := parseEnv(envCfg); err != nil {
		b.err = err
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withJSON(path string) *configBuilder {
	if path == "" {
		return b
	}
	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = err
		return b
	}
	b.configs = append(b.configs, jsonCfg)
	return b
}

func loadMerged() (*Config, error) {
	envCfg := new(Config)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON(envCfg.JSONFilePath).
		build()
}

// Load assembles and validates the effective configuration: defaults,
// overridden by environment variables, overridden by the optional JSON file
// (the path taken from the AUTHFRONT_CONFIG environment variable).
func Load() (*Config, error) {
	cfg, err := loadMerged()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

// LoadWithKey is Load with the publishable key forced to key, used when the
// caller passes the key programmatically rather than via environment.
func LoadWithKey(key string) (*Config, error) {
	cfg, err := loadMerged()
	if err != nil {
		return nil, err
	}
	if key != "" {
		cfg.PublishableKey = key
	}
	return cfg, cfg.validate()
}
