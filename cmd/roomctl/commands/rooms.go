// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/roomctl/roomctl/cmd/roomctl/cli"
	"github.com/roomctl/roomctl/lib/roomstate"
)

// RoomsCommand returns the "rooms" command: refresh the cache from
// the service and print every room with its bookings.
func RoomsCommand() *cli.Command {
	var flags serviceFlags
	var idsOnly bool

	return &cli.Command{
		Name:    "rooms",
		Summary: "List rooms and their bookings",
		Usage:   "roomctl rooms [flags]",
		Examples: []cli.Example{
			{
				Description: "List everything the service knows about",
				Command:     "roomctl rooms",
			},
			{
				Description: "Print identifiers for scripting",
				Command:     "roomctl rooms --ids",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("rooms", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.BoolVar(&idsOnly, "ids", false, "print room and booking identifiers")
			return flagSet
		},
		Run: func(args []string) error {
			logger := cli.NewCommandLogger().With("command", "rooms")
			orchestrator, err := flags.connect(logger)
			if err != nil {
				return err
			}

			outcome := orchestrator.Refresh(context.Background())
			if !outcome.OK {
				return fmt.Errorf("%s", outcome.Message)
			}

			printRooms(orchestrator.Store().Rooms(), idsOnly)
			return nil
		},
	}
}

func printRooms(rooms []roomstate.RoomEntry, idsOnly bool) {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	defer writer.Flush()

	for _, entry := range rooms {
		if idsOnly {
			fmt.Fprintf(writer, "%s\t%s\tcapacity %d\t%d bookings\n",
				entry.Room.ID, entry.Room.Name, entry.Room.Capacity, len(entry.Bookings))
		} else {
			fmt.Fprintf(writer, "%s\tcapacity %d\t%d bookings\n",
				entry.Room.Name, entry.Room.Capacity, len(entry.Bookings))
		}
		for _, booking := range entry.Bookings {
			status := booking.Status
			// The service keeps the cancellation time; show it as-is.
			if booking.CanceledAt != "" {
				status = fmt.Sprintf("%s at %s", status, booking.CanceledAt)
			}
			if idsOnly {
				fmt.Fprintf(writer, "  %s\t%s\t%s → %s\t%s\n",
					booking.ID, booking.Title, booking.StartAt, booking.EndAt, status)
			} else {
				fmt.Fprintf(writer, "  %s\t%s → %s\t%s\n",
					booking.Title, booking.StartAt, booking.EndAt, status)
			}
		}
	}
}
