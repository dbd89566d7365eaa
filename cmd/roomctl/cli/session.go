// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session holds the saved authentication state for the booking
// service. Stored at the well-known path returned by SessionFilePath
// and loaded automatically by commands that talk to the service —
// authenticate once via "roomctl login", then access is seamless.
//
// The bearer token is the only state roomctl persists beyond process
// lifetime.
type Session struct {
	// APIRoot is the base URL of the booking service the token was
	// verified against.
	APIRoot string `json:"api_root"`

	// Token is the bearer token sent in the Authorization header.
	Token string `json:"token"`
}

// SessionFilePath returns the path to the session file. Checks the
// ROOMCTL_SESSION_FILE environment variable first, then falls back to
// ~/.config/roomctl/session.json.
func SessionFilePath() string {
	if envPath := os.Getenv("ROOMCTL_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "roomctl-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "roomctl", "session.json")
}

// LoadSession reads the session from the well-known path. Returns a
// clear error directing the user to "roomctl login" if none exists.
func LoadSession() (*Session, error) {
	return LoadSessionFrom(SessionFilePath())
}

// LoadSessionFrom reads a session from a specific file path.
func LoadSessionFrom(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no session found at %s — run \"roomctl login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if session.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}
	if session.APIRoot == "" {
		return nil, fmt.Errorf("session file %s has no api_root", path)
	}
	return &session, nil
}

// SaveSession writes a session to the well-known path. Creates the
// parent directory with mode 0700 if it doesn't exist. The file is
// written with mode 0600 (owner-only read/write) since it contains a
// bearer token.
func SaveSession(session *Session) error {
	return SaveSessionTo(session, SessionFilePath())
}

// SaveSessionTo writes a session to a specific file path.
func SaveSessionTo(session *Session, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// RemoveSession deletes the session file at the well-known path. A
// missing file is not an error — logout is idempotent.
func RemoveSession() error {
	err := os.Remove(SessionFilePath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
