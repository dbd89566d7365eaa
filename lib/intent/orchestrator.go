// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package intent sequences user-facing operations against the booking
// service: refresh the cache, create a booking (optionally creating
// the room first), cancel a booking, reschedule a booking. Each intent
// issues one or more transport calls in strict order and merges only
// server-confirmed entities into the store — the cache never shows an
// entity the server rejected.
//
// Intents are independent; the store is their only shared state.
// Within one intent, calls are awaited in order. Across intents there
// is no ordering guarantee: a create that completes while a refresh's
// per-room booking fetches are still in flight can be overwritten by
// a stale booking list arriving later. This race is accepted — the
// client has no subscription protocol, so staleness is resolved only
// by the next refresh.
package intent

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/roomctl/roomctl/lib/roomapi"
	"github.com/roomctl/roomctl/lib/roomstate"
)

// Caller is the transport dependency. *roomapi.Client satisfies it;
// tests substitute a recording fake.
type Caller interface {
	Call(ctx context.Context, path string, options roomapi.CallOptions) roomapi.Result
}

// TimeSource collects a new start/end window for a reschedule. The
// current booking is passed so implementations can offer its values
// as defaults. Returning an empty string for either value aborts the
// reschedule before any call is made.
type TimeSource interface {
	BookingTimes(current roomapi.Booking) (startAt, endAt string)
}

// TimeFunc adapts a function to the TimeSource interface.
type TimeFunc func(current roomapi.Booking) (startAt, endAt string)

// BookingTimes implements TimeSource.
func (f TimeFunc) BookingTimes(current roomapi.Booking) (string, string) {
	return f(current)
}

// StaticTimes is a TimeSource with fixed values, for non-interactive
// callers that already hold the new window.
type StaticTimes struct {
	StartAt string
	EndAt   string
}

// BookingTimes implements TimeSource.
func (s StaticTimes) BookingTimes(roomapi.Booking) (string, string) {
	return s.StartAt, s.EndAt
}

// Outcome is the result of one intent: a success flag and a single
// human-readable status message. RoomID carries the booking target
// when the intent resolved one (in particular the identifier of a
// room created as the first step of a compound create).
type Outcome struct {
	OK      bool
	Message string
	RoomID  string
}

func failure(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}

// Orchestrator runs intents on top of a transport and a store.
type Orchestrator struct {
	api    Caller
	store  *roomstate.Store
	logger *slog.Logger
}

// NewOrchestrator creates an orchestrator. A nil logger defaults to
// slog.Default().
func NewOrchestrator(api Caller, store *roomstate.Store, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{api: api, store: store, logger: logger}
}

// Store returns the orchestrator's store, for callers that render its
// snapshots.
func (orchestrator *Orchestrator) Store() *roomstate.Store {
	return orchestrator.store
}

// Refresh reloads the room list and then each room's bookings. On a
// room-list failure the cache is left untouched. A failing per-room
// booking fetch is a soft failure: that room keeps whatever bookings
// were already cached, and the loop continues with the remaining
// rooms. There is no retry.
func (orchestrator *Orchestrator) Refresh(ctx context.Context) Outcome {
	result := orchestrator.api.Call(ctx, roomapi.RoomsPath, roomapi.CallOptions{})
	if !result.Succeeded {
		return failure("failed to load rooms: %s", result.Detail)
	}

	rooms, err := roomapi.DecodeRoomList(result.Body)
	if err != nil {
		return failure("failed to load rooms: %v", err)
	}
	orchestrator.store.ReplaceAll(rooms)

	failed := 0
	for _, room := range rooms {
		listResult := orchestrator.api.Call(ctx, roomapi.BookingsPath(room.ID), roomapi.CallOptions{})
		if !listResult.Succeeded {
			orchestrator.logger.Warn("booking list fetch failed",
				"room", room.ID, "status", listResult.StatusCode, "detail", listResult.Detail)
			failed++
			continue
		}
		bookings, err := roomapi.DecodeBookingList(listResult.Body)
		if err != nil {
			orchestrator.logger.Warn("booking list unparseable", "room", room.ID, "error", err)
			failed++
			continue
		}
		orchestrator.store.SetBookings(room.ID, bookings)
	}

	orchestrator.logger.Info("refreshed rooms", "rooms", len(rooms), "failed_lists", failed)
	if failed > 0 {
		return Outcome{OK: true, Message: fmt.Sprintf("loaded %d rooms (%d booking lists failed)", len(rooms), failed)}
	}
	return Outcome{OK: true, Message: fmt.Sprintf("loaded %d rooms", len(rooms))}
}

// CreateBookingParams are the inputs for a booking creation. RoomID
// selects an existing room; when empty, RoomName and Capacity describe
// a room to create first. Title falls back to the room name when the
// user supplied none.
type CreateBookingParams struct {
	RoomID   string
	RoomName string
	Capacity int
	Title    string
	StartAt  string
	EndAt    string
}

// CreateBooking creates a booking, creating the target room first when
// no room is selected. The two steps are strictly ordered and
// short-circuit on the first failure: a failed room creation means the
// booking call is never issued. A room created successfully stays in
// the cache even if the subsequent booking call fails — the partial
// completion is visible and intentional, not rolled back.
func (orchestrator *Orchestrator) CreateBooking(ctx context.Context, params CreateBookingParams) Outcome {
	roomID := params.RoomID
	if roomID == "" {
		if strings.TrimSpace(params.RoomName) == "" {
			return failure("room name is required")
		}

		result := orchestrator.api.Call(ctx, roomapi.RoomsPath, roomapi.CallOptions{
			Method: http.MethodPost,
			Body:   roomapi.CreateRoomRequest{Name: params.RoomName, Capacity: params.Capacity},
		})
		if !result.Succeeded {
			return failure("failed to create room: %s", result.Detail)
		}
		room, err := roomapi.DecodeRoom(result.Body)
		if err != nil {
			return failure("failed to create room: %v", err)
		}

		orchestrator.store.AddRoom(room)
		orchestrator.logger.Info("created room", "room", room.ID, "name", room.Name)
		roomID = room.ID
	}

	title := params.Title
	if strings.TrimSpace(title) == "" {
		title = params.RoomName
	}

	result := orchestrator.api.Call(ctx, roomapi.BookingsPath(roomID), roomapi.CallOptions{
		Method: http.MethodPost,
		Body:   roomapi.CreateBookingRequest{Title: title, StartAt: params.StartAt, EndAt: params.EndAt},
	})
	if !result.Succeeded {
		return Outcome{Message: fmt.Sprintf("failed to create booking: %s", result.Detail), RoomID: roomID}
	}
	booking, err := roomapi.DecodeBooking(result.Body)
	if err != nil {
		return Outcome{Message: fmt.Sprintf("failed to create booking: %v", err), RoomID: roomID}
	}

	orchestrator.store.UpsertBooking(roomID, booking)
	orchestrator.logger.Info("created booking", "room", roomID, "booking", booking.ID)
	return Outcome{OK: true, Message: "booking created", RoomID: roomID}
}

// CancelBooking asks the service to cancel a booking and merges the
// confirmed (now-cancelled) booking back into the cache. The entity is
// not removed — cancellation flips its status.
func (orchestrator *Orchestrator) CancelBooking(ctx context.Context, roomID, bookingID string) Outcome {
	result := orchestrator.api.Call(ctx, roomapi.CancelPath(roomID, bookingID), roomapi.CallOptions{
		Method: http.MethodPost,
	})
	if !result.Succeeded {
		return failure("failed to cancel booking: %s", result.Detail)
	}
	booking, err := roomapi.DecodeBooking(result.Body)
	if err != nil {
		return failure("failed to cancel booking: %v", err)
	}

	orchestrator.store.ReplaceBooking(roomID, bookingID, booking)
	orchestrator.logger.Info("cancelled booking", "room", roomID, "booking", bookingID)
	return Outcome{OK: true, Message: "booking cancelled", RoomID: roomID}
}

// RescheduleBooking collects a new time window through the TimeSource
// and replaces the booking's window on the service. An empty start or
// end aborts the intent before any call. On success the confirmed
// booking replaces the cached one.
func (orchestrator *Orchestrator) RescheduleBooking(ctx context.Context, roomID, bookingID string, times TimeSource) Outcome {
	current, _ := orchestrator.store.Booking(roomID, bookingID)
	startAt, endAt := times.BookingTimes(current)
	if startAt == "" || endAt == "" {
		return failure("reschedule aborted")
	}

	result := orchestrator.api.Call(ctx, roomapi.BookingPath(roomID, bookingID), roomapi.CallOptions{
		Method: http.MethodPut,
		Body:   roomapi.RescheduleRequest{StartAt: startAt, EndAt: endAt},
	})
	if !result.Succeeded {
		return failure("failed to reschedule booking: %s", result.Detail)
	}
	booking, err := roomapi.DecodeBooking(result.Body)
	if err != nil {
		return failure("failed to reschedule booking: %v", err)
	}

	orchestrator.store.ReplaceBooking(roomID, bookingID, booking)
	orchestrator.logger.Info("rescheduled booking", "room", roomID, "booking", bookingID)
	return Outcome{OK: true, Message: "booking rescheduled", RoomID: roomID}
}

// ParseCapacity parses a user-supplied capacity string. Anything that
// doesn't parse to a positive integer falls back to 1.
func ParseCapacity(value string) int {
	capacity, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || capacity <= 0 {
		return 1
	}
	return capacity
}
