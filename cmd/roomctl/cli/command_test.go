// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	t.Parallel()

	var ran []string
	root := &Command{
		Name: "roomctl",
		Subcommands: []*Command{
			{
				Name: "rooms",
				Run: func(args []string) error {
					ran = args
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"rooms", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "extra" {
		t.Errorf("args = %v, want [extra]", ran)
	}
}

func TestExecuteUnknownSubcommand(t *testing.T) {
	t.Parallel()

	root := &Command{
		Name:        "roomctl",
		Subcommands: []*Command{{Name: "rooms", Run: func([]string) error { return nil }}},
	}
	err := root.Execute([]string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v, want unknown command", err)
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	t.Parallel()

	var apiRoot string
	command := &Command{
		Name: "rooms",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("rooms", pflag.ContinueOnError)
			flags.StringVar(&apiRoot, "api-root", "", "service base URL")
			return flags
		},
		Run: func(args []string) error { return nil },
	}

	if err := command.Execute([]string{"--api-root", "http://localhost:8000"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if apiRoot != "http://localhost:8000" {
		t.Errorf("api-root = %q", apiRoot)
	}
}

func TestExecuteUnknownFlagPointsAtHelp(t *testing.T) {
	t.Parallel()

	command := &Command{
		Name: "rooms",
		Flags: func() *pflag.FlagSet {
			return pflag.NewFlagSet("rooms", pflag.ContinueOnError)
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--bogus"})
	if err == nil || !strings.Contains(err.Error(), "--help") {
		t.Errorf("err = %v, want a pointer at --help", err)
	}
}

func TestPrintHelpListsSubcommands(t *testing.T) {
	t.Parallel()

	root := &Command{
		Name:    "roomctl",
		Summary: "meeting room booking client",
		Subcommands: []*Command{
			{Name: "rooms", Summary: "list rooms and bookings"},
			{Name: "book", Summary: "create a booking"},
		},
	}

	var output strings.Builder
	root.PrintHelp(&output)
	help := output.String()
	for _, want := range []string{"rooms", "book", "list rooms and bookings", "roomctl <command>"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}
