// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roomctl/roomctl/cmd/roomctl/cli"
	"github.com/roomctl/roomctl/lib/roomui"
)

// UICommand returns the "ui" command: the interactive room browser.
func UICommand() *cli.Command {
	var flags serviceFlags

	return &cli.Command{
		Name:    "ui",
		Summary: "Browse rooms and bookings interactively",
		Description: `Open the full-screen room browser.

The left pane lists rooms, the right pane the selected room's
bookings. Navigate with j/k, switch panes with Tab, refresh with r,
and press n, e, or x to create, reschedule, or cancel a booking.`,
		Usage: "roomctl ui [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("ui", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			logger := cli.NewCommandLogger().With("command", "ui")
			orchestrator, err := flags.connect(logger)
			if err != nil {
				return err
			}

			model := roomui.NewModel(orchestrator)
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
