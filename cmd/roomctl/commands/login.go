// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/roomctl/roomctl/cmd/roomctl/cli"
	"github.com/roomctl/roomctl/lib/config"
	"github.com/roomctl/roomctl/lib/roomapi"
)

// LoginCommand returns the "login" command. It collects the bearer
// token (hidden prompt, or --token for scripts), verifies it against
// the service with a room listing probe, and saves the session to the
// well-known path. Subsequent commands load the session transparently.
func LoginCommand() *cli.Command {
	var apiRoot string
	var token string
	var configPath string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate against the booking service",
		Description: `Save a bearer token for the booking service.

The token is prompted with echo disabled (or taken from --token for
non-interactive use), verified with a request to the service, and
stored at ~/.config/roomctl/session.json (or $ROOMCTL_SESSION_FILE)
with mode 0600.`,
		Usage: "roomctl login --api-root <url> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for the token)",
				Command:     "roomctl login --api-root http://localhost:8000/api",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&apiRoot, "api-root", "", "booking service base URL")
			flags.StringVar(&token, "token", "", "bearer token (default: prompt)")
			flags.StringVar(&configPath, "config", "", "config file path (default: $"+config.EnvVar+")")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			if path := config.Path(configPath); path != "" && apiRoot == "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				apiRoot = loaded.API.RootURL
			}
			if apiRoot == "" {
				return fmt.Errorf("--api-root is required (or set api.root_url in a config file)")
			}

			if token == "" {
				entered, err := cli.ReadToken("Token: ")
				if err != nil {
					return err
				}
				if entered == "" {
					return fmt.Errorf("no token entered")
				}
				token = entered
			}

			// Verify before saving. The listing endpoint is public,
			// but the service still rejects a malformed or unknown
			// bearer token outright, which is exactly the check we
			// want.
			logger := cli.NewCommandLogger().With("command", "login")
			client := roomapi.NewClient(roomapi.ClientConfig{RootURL: apiRoot, Token: token, Logger: logger})
			result := client.Call(context.Background(), roomapi.RoomsPath, roomapi.CallOptions{})
			if !result.Succeeded {
				return fmt.Errorf("token verification failed: %s", result.Detail)
			}

			if err := cli.SaveSession(&cli.Session{APIRoot: apiRoot, Token: token}); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Logged in to %s\n", apiRoot)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", cli.SessionFilePath())
			return nil
		},
	}
}

// LogoutCommand returns the "logout" command, which removes the saved
// session. Idempotent — logging out twice is not an error.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Remove the saved session",
		Usage:   "roomctl logout",
		Run: func(args []string) error {
			if err := cli.RemoveSession(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Logged out")
			return nil
		},
	}
}
