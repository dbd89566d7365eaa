// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/roomctl/roomctl/cmd/roomctl/cli"
	"github.com/roomctl/roomctl/lib/config"
	"github.com/roomctl/roomctl/lib/intent"
	"github.com/roomctl/roomctl/lib/roomapi"
	"github.com/roomctl/roomctl/lib/roomstate"
)

// serviceFlags are the connection flags shared by every command that
// talks to the booking service.
type serviceFlags struct {
	apiRoot    string
	token      string
	configPath string
}

func (flags *serviceFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.apiRoot, "api-root", "", "booking service base URL (default: saved session)")
	flagSet.StringVar(&flags.token, "token", "", "bearer token (default: saved session)")
	flagSet.StringVar(&flags.configPath, "config", "", "config file path (default: $"+config.EnvVar+")")
}

// resolve determines the API root and token from, in order of
// precedence: explicit flags, the config file, the saved session.
// The session is optional — listing rooms works anonymously.
func (flags *serviceFlags) resolve() (apiRoot, token string, err error) {
	apiRoot = flags.apiRoot
	token = flags.token

	sessionFile := ""
	if path := config.Path(flags.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return "", "", err
		}
		if apiRoot == "" {
			apiRoot = loaded.API.RootURL
		}
		sessionFile = loaded.Session.File
	}

	if apiRoot == "" || token == "" {
		session, sessionErr := loadSession(sessionFile)
		if sessionErr == nil {
			if apiRoot == "" {
				apiRoot = session.APIRoot
			}
			if token == "" {
				token = session.Token
			}
		}
	}

	if apiRoot == "" {
		return "", "", fmt.Errorf("no API root configured — pass --api-root, set it in a config file, or run \"roomctl login\"")
	}
	return apiRoot, token, nil
}

// loadSession reads the saved session, honoring a config-provided
// file location when set.
func loadSession(sessionFile string) (*cli.Session, error) {
	if sessionFile != "" {
		return cli.LoadSessionFrom(sessionFile)
	}
	return cli.LoadSession()
}

// connect builds an orchestrator over a fresh store and transport.
func (flags *serviceFlags) connect(logger *slog.Logger) (*intent.Orchestrator, error) {
	apiRoot, token, err := flags.resolve()
	if err != nil {
		return nil, err
	}
	client := roomapi.NewClient(roomapi.ClientConfig{
		RootURL: apiRoot,
		Token:   token,
		Logger:  logger,
	})
	return intent.NewOrchestrator(client, roomstate.NewStore(), logger), nil
}
