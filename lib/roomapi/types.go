// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomapi

import (
	"encoding/json"
	"fmt"
)

// Room is a bookable meeting room as returned by the service. The
// identifier is server-assigned and opaque; the client never invents
// one.
type Room struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Booking is a reservation of a room for a time window. Timestamps
// are ISO-8601 text with a UTC offset, passed through verbatim — the
// service owns all time validation (ordering, minimum and maximum
// duration, overlap).
//
// Status is an opaque server-defined tag. The service currently emits
// "active" and "canceled", but the client never gates behavior on the
// value; it only displays it.
type Booking struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	StartAt    string `json:"start_at"`
	EndAt      string `json:"end_at"`
	Status     string `json:"status"`
	CanceledAt string `json:"canceled_at,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// Statuses the service is known to emit, for display purposes only.
const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
)

// CreateRoomRequest is the body for POST /rooms/.
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// CreateBookingRequest is the body for POST /rooms/{id}/bookings.
type CreateBookingRequest struct {
	Title   string `json:"title"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// RescheduleRequest is the body for PUT /rooms/{id}/bookings/{id}.
type RescheduleRequest struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// DecodeRoomList normalizes the two shapes the room listing endpoint
// can return — a bare JSON array, or a pagination envelope whose
// "results" field holds the array — into one slice. Downstream code
// never branches on shape.
func DecodeRoomList(body []byte) ([]Room, error) {
	var rooms []Room
	if err := json.Unmarshal(body, &rooms); err == nil {
		return rooms, nil
	}

	var envelope struct {
		Results []Room `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("roomapi: room list is neither an array nor an envelope: %w", err)
	}
	return envelope.Results, nil
}

// DecodeBookingList parses a room's booking list response.
func DecodeBookingList(body []byte) ([]Booking, error) {
	var bookings []Booking
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, fmt.Errorf("roomapi: parsing booking list: %w", err)
	}
	return bookings, nil
}

// DecodeRoom parses a single room response.
func DecodeRoom(body []byte) (Room, error) {
	var room Room
	if err := json.Unmarshal(body, &room); err != nil {
		return Room{}, fmt.Errorf("roomapi: parsing room: %w", err)
	}
	return room, nil
}

// DecodeBooking parses a single booking response.
func DecodeBooking(body []byte) (Booking, error) {
	var booking Booking
	if err := json.Unmarshal(body, &booking); err != nil {
		return Booking{}, fmt.Errorf("roomapi: parsing booking: %w", err)
	}
	return booking, nil
}

// RoomsPath is the room collection path.
const RoomsPath = "/rooms/"

// BookingsPath returns the booking collection path for a room.
func BookingsPath(roomID string) string {
	return fmt.Sprintf("/rooms/%s/bookings", roomID)
}

// BookingPath returns the path for one booking.
func BookingPath(roomID, bookingID string) string {
	return fmt.Sprintf("/rooms/%s/bookings/%s", roomID, bookingID)
}

// CancelPath returns the cancel action path for one booking.
func CancelPath(roomID, bookingID string) string {
	return fmt.Sprintf("/rooms/%s/bookings/%s/cancel", roomID, bookingID)
}
