// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package roomstate holds the client's in-memory view of rooms and
// their bookings. The store is the only legal way to change that view,
// and every entity it contains arrived through a confirmed server
// response — the store never fabricates identifiers and is never
// mutated optimistically.
//
// The cache is eventually consistent. Entities are never deleted by
// the client: cancellation flips a booking's status, and full removal
// only happens when a refresh wholesale-replaces a room's booking
// list.
package roomstate

import (
	"slices"
	"sync"

	"github.com/roomctl/roomctl/lib/roomapi"
)

// RoomEntry is one cached room together with its booking list. The
// booking order is the server's return order (insertion order on
// upsert), not time order.
type RoomEntry struct {
	Room     roomapi.Room
	Bookings []roomapi.Booking
}

// Store is the in-memory cache. All operations are synchronous,
// perform no I/O, and are total for well-typed inputs.
//
// The mutex exists for Go memory safety: the TUI's render loop and
// intent goroutines share one store. It serializes individual
// mutations only and provides no cross-intent ordering — see the
// intent package for the ordering caveats.
type Store struct {
	mu      sync.RWMutex
	entries []RoomEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Rooms returns a deep-copied snapshot of the cache in insertion
// order. Mutating the returned slice does not affect the store.
func (store *Store) Rooms() []RoomEntry {
	store.mu.RLock()
	defer store.mu.RUnlock()

	snapshot := make([]RoomEntry, len(store.entries))
	for i, entry := range store.entries {
		snapshot[i] = RoomEntry{
			Room:     entry.Room,
			Bookings: slices.Clone(entry.Bookings),
		}
	}
	return snapshot
}

// Room returns a copy of one cached room entry by identifier.
func (store *Store) Room(roomID string) (RoomEntry, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, entry := range store.entries {
		if entry.Room.ID == roomID {
			return RoomEntry{Room: entry.Room, Bookings: slices.Clone(entry.Bookings)}, true
		}
	}
	return RoomEntry{}, false
}

// Booking returns a copy of one cached booking.
func (store *Store) Booking(roomID, bookingID string) (roomapi.Booking, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, entry := range store.entries {
		if entry.Room.ID != roomID {
			continue
		}
		for _, booking := range entry.Bookings {
			if booking.ID == bookingID {
				return booking, true
			}
		}
	}
	return roomapi.Booking{}, false
}

// ReplaceAll wholesale-replaces the cache with the given rooms, in
// order. A room already present keeps its cached booking list across
// the replace; new rooms start with an empty list. Preserving known
// bookings avoids a transient "0 bookings" view while the per-room
// booking fetches of a refresh are still in flight.
func (store *Store) ReplaceAll(rooms []roomapi.Room) {
	store.mu.Lock()
	defer store.mu.Unlock()

	previous := make(map[string][]roomapi.Booking, len(store.entries))
	for _, entry := range store.entries {
		previous[entry.Room.ID] = entry.Bookings
	}

	entries := make([]RoomEntry, 0, len(rooms))
	for _, room := range rooms {
		entries = append(entries, RoomEntry{
			Room:     room,
			Bookings: previous[room.ID],
		})
	}
	store.entries = entries
}

// SetBookings wholesale-replaces one room's booking list. A no-op for
// rooms not in the cache.
func (store *Store) SetBookings(roomID string, bookings []roomapi.Booking) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.entries {
		if store.entries[i].Room.ID == roomID {
			store.entries[i].Bookings = slices.Clone(bookings)
			return
		}
	}
}

// AddRoom appends a server-confirmed room with an empty booking list.
func (store *Store) AddRoom(room roomapi.Room) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries = append(store.entries, RoomEntry{Room: room})
}

// UpsertBooking merges a server-confirmed booking into a room's list:
// a booking with the same identifier is replaced in place (preserving
// position), otherwise the booking is appended. Idempotent — applying
// the same confirmed booking twice yields the same state as applying
// it once. A no-op for rooms not in the cache.
func (store *Store) UpsertBooking(roomID string, booking roomapi.Booking) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.entries {
		if store.entries[i].Room.ID != roomID {
			continue
		}
		for j := range store.entries[i].Bookings {
			if store.entries[i].Bookings[j].ID == booking.ID {
				store.entries[i].Bookings[j] = booking
				return
			}
		}
		store.entries[i].Bookings = append(store.entries[i].Bookings, booking)
		return
	}
}

// ReplaceBooking replaces an existing booking in place, or does
// nothing when the booking is not cached. The edit and cancel flows
// only call this after the server confirmed the target exists, so a
// miss means the cache had already diverged (e.g., an external
// cancellation) and is treated as non-fatal.
func (store *Store) ReplaceBooking(roomID, bookingID string, updated roomapi.Booking) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.entries {
		if store.entries[i].Room.ID != roomID {
			continue
		}
		for j := range store.entries[i].Bookings {
			if store.entries[i].Bookings[j].ID == bookingID {
				store.entries[i].Bookings[j] = updated
				return
			}
		}
		return
	}
}
