// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the roomctl command tree.
package commands

import (
	"github.com/roomctl/roomctl/cmd/roomctl/cli"
)

// Root returns the root command for the roomctl binary.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "roomctl",
		Summary: "Terminal client for the meeting-room booking service",
		Description: `roomctl browses meeting rooms and their bookings, creates bookings
(optionally creating the room first), reschedules them, and cancels
them, against a remote booking service over HTTP.

Authenticate once with "roomctl login"; the bearer token is saved
locally and used transparently by every other command. "roomctl ui"
opens the interactive browser.`,
		Subcommands: []*cli.Command{
			LoginCommand(),
			LogoutCommand(),
			RoomsCommand(),
			BookCommand(),
			CancelCommand(),
			RescheduleCommand(),
			UICommand(),
		},
	}
}
