// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomapi

import "testing"

func TestDecodeRoomListBareArray(t *testing.T) {
	t.Parallel()

	rooms, err := DecodeRoomList([]byte(`[{"id":"r1","name":"Lab A","capacity":4},{"id":"r2","name":"Lab B","capacity":8}]`))
	if err != nil {
		t.Fatalf("DecodeRoomList: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("len(rooms) = %d, want 2", len(rooms))
	}
	if rooms[1].ID != "r2" || rooms[1].Capacity != 8 {
		t.Errorf("rooms[1] = %+v", rooms[1])
	}
}

func TestDecodeRoomListEnvelope(t *testing.T) {
	t.Parallel()

	rooms, err := DecodeRoomList([]byte(`{"count":1,"results":[{"id":"r1","name":"Lab A","capacity":4}]}`))
	if err != nil {
		t.Fatalf("DecodeRoomList: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Lab A" {
		t.Errorf("rooms = %+v, want the envelope's results", rooms)
	}
}

func TestDecodeRoomListEmptyEnvelope(t *testing.T) {
	t.Parallel()

	// An envelope without results normalizes to an empty list, not an error.
	rooms, err := DecodeRoomList([]byte(`{"count":0}`))
	if err != nil {
		t.Fatalf("DecodeRoomList: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("len(rooms) = %d, want 0", len(rooms))
	}
}

func TestDecodeRoomListMalformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeRoomList([]byte(`<html>gateway error</html>`)); err == nil {
		t.Error("DecodeRoomList accepted non-JSON input")
	}
}

func TestDecodeBooking(t *testing.T) {
	t.Parallel()

	booking, err := DecodeBooking([]byte(`{
		"id": "b1",
		"title": "Standup",
		"start_at": "2026-09-01T09:00:00Z",
		"end_at": "2026-09-01T09:15:00Z",
		"status": "active",
		"created_at": "2026-08-30T12:00:00Z"
	}`))
	if err != nil {
		t.Fatalf("DecodeBooking: %v", err)
	}
	if booking.Title != "Standup" || booking.Status != StatusActive {
		t.Errorf("booking = %+v", booking)
	}
}

func TestPaths(t *testing.T) {
	t.Parallel()

	if got := BookingsPath("r1"); got != "/rooms/r1/bookings" {
		t.Errorf("BookingsPath = %q", got)
	}
	if got := BookingPath("r1", "b2"); got != "/rooms/r1/bookings/b2" {
		t.Errorf("BookingPath = %q", got)
	}
	if got := CancelPath("r1", "b2"); got != "/rooms/r1/bookings/b2/cancel" {
		t.Errorf("CancelPath = %q", got)
	}
}
