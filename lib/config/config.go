// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for roomctl.
//
// Configuration is loaded from a single YAML file specified by:
//   - ROOMCTL_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; commands work without
// a config file (flags and the session file cover the common case),
// and when a file is named it is authoritative.
//
// The config file may contain environment-specific sections
// (development, staging, production) that override base values when
// the environment matches.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development setups.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for roomctl.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// API configures the booking service endpoint.
	API APIConfig `yaml:"api"`

	// Session configures where the bearer-token session is stored.
	Session SessionConfig `yaml:"session"`

	// Per-environment overrides, applied after the base config.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// APIConfig configures the booking service endpoint.
type APIConfig struct {
	// RootURL is the base URL of the booking service
	// (e.g., "http://localhost:8000/api").
	RootURL string `yaml:"root_url"`
}

// SessionConfig configures session storage.
type SessionConfig struct {
	// File overrides the session file path. Empty means the
	// well-known default (see the cli package).
	File string `yaml:"file"`
}

// Overrides contains fields that can be overridden per environment.
type Overrides struct {
	API     *APIConfig     `yaml:"api,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
}

// EnvVar is the environment variable naming the config file.
const EnvVar = "ROOMCTL_CONFIG"

// Path returns the config file path from the flag value or the
// environment, flag first. Empty means no config file is in play.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads and validates a config file, applying the override
// section matching the configured environment. Environment variable
// references (${VAR}) in string values are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var loaded Config
	if err := yaml.Unmarshal([]byte(expanded), &loaded); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if loaded.Environment == "" {
		loaded.Environment = Development
	}
	switch loaded.Environment {
	case Development, Staging, Production:
	default:
		return nil, fmt.Errorf("config: unknown environment %q in %s", loaded.Environment, path)
	}

	loaded.apply(loaded.overridesFor(loaded.Environment))
	return &loaded, nil
}

func (config *Config) overridesFor(environment Environment) *Overrides {
	switch environment {
	case Development:
		return config.Development
	case Staging:
		return config.Staging
	case Production:
		return config.Production
	}
	return nil
}

func (config *Config) apply(overrides *Overrides) {
	if overrides == nil {
		return
	}
	if overrides.API != nil && overrides.API.RootURL != "" {
		config.API.RootURL = overrides.API.RootURL
	}
	if overrides.Session != nil && overrides.Session.File != "" {
		config.Session.File = overrides.Session.File
	}
}
