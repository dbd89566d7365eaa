// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/roomctl/roomctl/lib/roomapi"
	"github.com/roomctl/roomctl/lib/roomstate"
)

// fakeService is a minimal in-memory booking service speaking the real
// wire protocol. Identifiers are server-assigned UUIDs, mirroring the
// production service.
type fakeService struct {
	mu       sync.Mutex
	token    string
	rooms    []roomapi.Room
	bookings map[string][]roomapi.Booking
}

func newFakeService(token string) *fakeService {
	return &fakeService{token: token, bookings: map[string][]roomapi.Booking{}}
}

func (service *fakeService) authorized(request *http.Request) bool {
	return request.Header.Get("Authorization") == "Bearer "+service.token
}

func (service *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /rooms/", func(writer http.ResponseWriter, request *http.Request) {
		service.mu.Lock()
		defer service.mu.Unlock()
		// Envelope shape, as the paginated listing endpoint returns.
		json.NewEncoder(writer).Encode(map[string]any{"count": len(service.rooms), "results": service.rooms})
	})

	mux.HandleFunc("POST /rooms/", func(writer http.ResponseWriter, request *http.Request) {
		if !service.authorized(request) {
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]string{"detail": "invalid API token"})
			return
		}
		var body roomapi.CreateRoomRequest
		json.NewDecoder(request.Body).Decode(&body)

		service.mu.Lock()
		room := roomapi.Room{ID: uuid.NewString(), Name: body.Name, Capacity: body.Capacity}
		service.rooms = append(service.rooms, room)
		service.mu.Unlock()

		writer.WriteHeader(http.StatusCreated)
		json.NewEncoder(writer).Encode(room)
	})

	mux.HandleFunc("GET /rooms/{room}/bookings", func(writer http.ResponseWriter, request *http.Request) {
		service.mu.Lock()
		defer service.mu.Unlock()
		list := service.bookings[request.PathValue("room")]
		if list == nil {
			list = []roomapi.Booking{}
		}
		json.NewEncoder(writer).Encode(list)
	})

	mux.HandleFunc("POST /rooms/{room}/bookings", func(writer http.ResponseWriter, request *http.Request) {
		if !service.authorized(request) {
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]string{"detail": "invalid API token"})
			return
		}
		var body roomapi.CreateBookingRequest
		json.NewDecoder(request.Body).Decode(&body)

		service.mu.Lock()
		booking := roomapi.Booking{
			ID:      uuid.NewString(),
			Title:   body.Title,
			StartAt: body.StartAt,
			EndAt:   body.EndAt,
			Status:  roomapi.StatusActive,
		}
		roomID := request.PathValue("room")
		service.bookings[roomID] = append(service.bookings[roomID], booking)
		service.mu.Unlock()

		writer.WriteHeader(http.StatusCreated)
		json.NewEncoder(writer).Encode(booking)
	})

	mux.HandleFunc("POST /rooms/{room}/bookings/{booking}/cancel", func(writer http.ResponseWriter, request *http.Request) {
		service.mu.Lock()
		defer service.mu.Unlock()
		roomID := request.PathValue("room")
		for i, booking := range service.bookings[roomID] {
			if booking.ID == request.PathValue("booking") {
				service.bookings[roomID][i].Status = roomapi.StatusCanceled
				json.NewEncoder(writer).Encode(service.bookings[roomID][i])
				return
			}
		}
		writer.WriteHeader(http.StatusNotFound)
		json.NewEncoder(writer).Encode(map[string]string{"detail": "booking not found"})
	})

	return mux
}

// TestIntentsAgainstHTTPService drives the orchestrator through the
// real transport against an in-process service: refresh an empty
// deployment, create a room+booking in one compound intent, refresh
// again, then cancel.
func TestIntentsAgainstHTTPService(t *testing.T) {
	t.Parallel()

	service := newFakeService("test-token")
	server := httptest.NewServer(service.handler())
	t.Cleanup(server.Close)

	client := roomapi.NewClient(roomapi.ClientConfig{RootURL: server.URL, Token: "test-token"})
	store := roomstate.NewStore()
	orchestrator := NewOrchestrator(client, store, nil)
	ctx := context.Background()

	if outcome := orchestrator.Refresh(ctx); !outcome.OK || !strings.Contains(outcome.Message, "0 rooms") {
		t.Fatalf("initial refresh = %+v", outcome)
	}

	created := orchestrator.CreateBooking(ctx, CreateBookingParams{
		RoomName: "Lab A",
		Capacity: 4,
		StartAt:  "2026-09-01T09:00:00Z",
		EndAt:    "2026-09-01T10:00:00Z",
	})
	if !created.OK {
		t.Fatalf("create = %+v", created)
	}
	if created.RoomID == "" {
		t.Fatal("create returned no room identifier")
	}

	entry, okRoom := store.Room(created.RoomID)
	if !okRoom || len(entry.Bookings) != 1 {
		t.Fatalf("cached entry = %+v", entry)
	}
	bookingID := entry.Bookings[0].ID
	if entry.Bookings[0].Title != "Lab A" {
		t.Errorf("title = %q, want defaulted from the room name", entry.Bookings[0].Title)
	}

	if outcome := orchestrator.Refresh(ctx); !outcome.OK {
		t.Fatalf("refresh after create = %+v", outcome)
	}
	if entry, _ = store.Room(created.RoomID); len(entry.Bookings) != 1 {
		t.Fatalf("bookings after refresh = %+v", entry.Bookings)
	}

	if outcome := orchestrator.CancelBooking(ctx, created.RoomID, bookingID); !outcome.OK {
		t.Fatalf("cancel = %+v", outcome)
	}
	booking, _ := store.Booking(created.RoomID, bookingID)
	if booking.Status != roomapi.StatusCanceled {
		t.Errorf("status after cancel = %q", booking.Status)
	}
}

// TestCreateBookingRejectedToken exercises the 401 path end to end:
// the rejection's detail field surfaces in the outcome and nothing is
// cached.
func TestCreateBookingRejectedToken(t *testing.T) {
	t.Parallel()

	service := newFakeService("real-token")
	server := httptest.NewServer(service.handler())
	t.Cleanup(server.Close)

	client := roomapi.NewClient(roomapi.ClientConfig{RootURL: server.URL, Token: "wrong-token"})
	store := roomstate.NewStore()
	orchestrator := NewOrchestrator(client, store, nil)

	outcome := orchestrator.CreateBooking(context.Background(), CreateBookingParams{
		RoomName: "Lab A",
		Capacity: 4,
		StartAt:  "2026-09-01T09:00:00Z",
		EndAt:    "2026-09-01T10:00:00Z",
	})

	if outcome.OK {
		t.Fatal("create succeeded with a wrong token")
	}
	if !strings.Contains(outcome.Message, "invalid API token") {
		t.Errorf("message = %q, want the server's detail surfaced", outcome.Message)
	}
	if len(store.Rooms()) != 0 {
		t.Errorf("cache = %+v, want empty", store.Rooms())
	}
}
