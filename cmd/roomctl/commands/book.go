// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/roomctl/roomctl/cmd/roomctl/cli"
	"github.com/roomctl/roomctl/lib/intent"
	"github.com/roomctl/roomctl/lib/roomapi"
)

// BookCommand returns the "book" command: create a booking, creating
// the target room first when --room is not given.
func BookCommand() *cli.Command {
	var flags serviceFlags
	var roomID, roomName, capacity, title, startAt, endAt string

	return &cli.Command{
		Name:    "book",
		Summary: "Create a booking (optionally creating the room first)",
		Description: `Create a booking for a room.

Pass --room with an existing room identifier, or --room-name (and
optionally --capacity) to create the room first and book it in one
go. When the room creation fails, no booking is attempted. When the
booking fails after the room was created, the room stays — partial
completion is reported, not rolled back.

The title defaults to the room name when omitted. Times are ISO-8601
with a UTC offset (e.g. 2026-09-01T09:00:00Z); the service owns all
time validation.`,
		Usage: "roomctl book --start <iso> --end <iso> [flags]",
		Examples: []cli.Example{
			{
				Description: "Book an existing room",
				Command:     "roomctl book --room 4cd3… --title Standup --start 2026-09-01T09:00:00Z --end 2026-09-01T09:15:00Z",
			},
			{
				Description: "Create a room and book it",
				Command:     "roomctl book --room-name \"Lab A\" --capacity 4 --start 2026-09-01T09:00:00Z --end 2026-09-01T10:00:00Z",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("book", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&roomID, "room", "", "existing room identifier")
			flagSet.StringVar(&roomName, "room-name", "", "name for a room to create when --room is not given")
			flagSet.StringVar(&capacity, "capacity", "", "capacity for a room to create (default 1)")
			flagSet.StringVar(&title, "title", "", "booking title (default: room name)")
			flagSet.StringVar(&startAt, "start", "", "start time, ISO-8601")
			flagSet.StringVar(&endAt, "end", "", "end time, ISO-8601")
			return flagSet
		},
		Run: func(args []string) error {
			logger := cli.NewCommandLogger().With("command", "book")
			orchestrator, err := flags.connect(logger)
			if err != nil {
				return err
			}

			outcome := orchestrator.CreateBooking(context.Background(), intent.CreateBookingParams{
				RoomID:   roomID,
				RoomName: roomName,
				Capacity: intent.ParseCapacity(capacity),
				Title:    title,
				StartAt:  startAt,
				EndAt:    endAt,
			})

			fmt.Println(outcome.Message)
			if outcome.RoomID != "" && roomID == "" {
				fmt.Printf("room: %s\n", outcome.RoomID)
			}
			if !outcome.OK {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// CancelCommand returns the "cancel" command.
func CancelCommand() *cli.Command {
	var flags serviceFlags

	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel a booking",
		Description: `Cancel a booking. The service marks the booking cancelled rather
than deleting it; a subsequent "roomctl rooms" shows it with its new
status.`,
		Usage: "roomctl cancel <room-id> <booking-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("cancel", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: roomctl cancel <room-id> <booking-id>")
			}

			logger := cli.NewCommandLogger().With("command", "cancel")
			orchestrator, err := flags.connect(logger)
			if err != nil {
				return err
			}

			outcome := orchestrator.CancelBooking(context.Background(), args[0], args[1])
			fmt.Println(outcome.Message)
			if !outcome.OK {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// RescheduleCommand returns the "reschedule" command: replace a
// booking's time window. The new window comes from --start/--end, or
// interactively with the booking's current values offered as
// defaults.
func RescheduleCommand() *cli.Command {
	var flags serviceFlags
	var startAt, endAt string

	return &cli.Command{
		Name:    "reschedule",
		Summary: "Change a booking's time window",
		Usage:   "roomctl reschedule <room-id> <booking-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Non-interactive reschedule",
				Command:     "roomctl reschedule 4cd3… 81fe… --start 2026-09-01T14:00:00Z --end 2026-09-01T15:00:00Z",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("reschedule", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&startAt, "start", "", "new start time, ISO-8601 (default: prompt)")
			flagSet.StringVar(&endAt, "end", "", "new end time, ISO-8601 (default: prompt)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: roomctl reschedule <room-id> <booking-id>")
			}
			roomID, bookingID := args[0], args[1]

			logger := cli.NewCommandLogger().With("command", "reschedule")
			orchestrator, err := flags.connect(logger)
			if err != nil {
				return err
			}

			var times intent.TimeSource
			if startAt != "" && endAt != "" {
				times = intent.StaticTimes{StartAt: startAt, EndAt: endAt}
			} else {
				// Populate the cache so the prompt can offer the
				// booking's current window as defaults.
				orchestrator.Refresh(context.Background())
				times = promptedTimes(startAt, endAt)
			}

			outcome := orchestrator.RescheduleBooking(context.Background(), roomID, bookingID, times)
			fmt.Println(outcome.Message)
			if !outcome.OK {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// promptedTimes collects the new window interactively, keeping any
// value that was already supplied by flag. An empty answer falls back
// to the booking's current value; submitting nothing at all aborts
// the intent (the orchestrator treats empty values as an abort).
func promptedTimes(flagStart, flagEnd string) intent.TimeSource {
	return intent.TimeFunc(func(current roomapi.Booking) (string, string) {
		startAt := flagStart
		if startAt == "" {
			entered, err := cli.ReadLineDefault(os.Stdin, "New start (ISO-8601)", current.StartAt)
			if err != nil {
				return "", ""
			}
			startAt = entered
		}
		endAt := flagEnd
		if endAt == "" {
			entered, err := cli.ReadLineDefault(os.Stdin, "New end (ISO-8601)", current.EndAt)
			if err != nil {
				return "", ""
			}
			endAt = entered
		}
		return startAt, endAt
	})
}
