// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBase(t *testing.T) {
	path := writeConfig(t, `
environment: development
api:
  root_url: http://localhost:8000/api
session:
  file: /tmp/roomctl-session.json
`)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Environment != Development {
		t.Errorf("environment = %q", loaded.Environment)
	}
	if loaded.API.RootURL != "http://localhost:8000/api" {
		t.Errorf("root_url = %q", loaded.API.RootURL)
	}
	if loaded.Session.File != "/tmp/roomctl-session.json" {
		t.Errorf("session file = %q", loaded.Session.File)
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  root_url: http://localhost:8000/api
production:
  api:
    root_url: https://booking.example.com/api
`)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.RootURL != "https://booking.example.com/api" {
		t.Errorf("root_url = %q, want the production override", loaded.API.RootURL)
	}
}

func TestLoadIgnoresOtherEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: development
api:
  root_url: http://localhost:8000/api
production:
  api:
    root_url: https://booking.example.com/api
`)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.RootURL != "http://localhost:8000/api" {
		t.Errorf("root_url = %q, want the base value", loaded.API.RootURL)
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("ROOMCTL_TEST_HOST", "booking.internal")
	path := writeConfig(t, `
api:
  root_url: http://${ROOMCTL_TEST_HOST}/api
`)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.RootURL != "http://booking.internal/api" {
		t.Errorf("root_url = %q", loaded.API.RootURL)
	}
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	path := writeConfig(t, "environment: sandbox\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown environment")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestPathPrefersFlag(t *testing.T) {
	t.Setenv(EnvVar, "/from/env.yaml")
	if got := Path("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("Path = %q, want the flag value", got)
	}
	if got := Path(""); got != "/from/env.yaml" {
		t.Errorf("Path = %q, want the env value", got)
	}
}
