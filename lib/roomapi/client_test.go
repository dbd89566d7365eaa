// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCallSuccess(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotAuth = request.Header.Get("Authorization")
		gotContentType = request.Header.Get("Content-Type")
		writer.WriteHeader(http.StatusOK)
		writer.Write([]byte(`[{"id":"r1","name":"Lab A","capacity":4}]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{RootURL: server.URL, Token: "test-token"})
	result := client.Call(context.Background(), RoomsPath, CallOptions{})

	if !result.Succeeded {
		t.Fatalf("Succeeded = false, want true (status %d, detail %q)", result.StatusCode, result.Detail)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if result.Detail != "" {
		t.Errorf("Detail = %q, want empty on success", result.Detail)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}

	rooms, err := DecodeRoomList(result.Body)
	if err != nil {
		t.Fatalf("DecodeRoomList: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Lab A" {
		t.Errorf("rooms = %+v, want one room named Lab A", rooms)
	}
}

func TestCallOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, present := request.Header["Authorization"]; present {
			t.Error("Authorization header present, want absent for empty token")
		}
		writer.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{RootURL: server.URL})
	if result := client.Call(context.Background(), RoomsPath, CallOptions{}); !result.Succeeded {
		t.Fatalf("call failed: %q", result.Detail)
	}
}

func TestCallPerCallTokenOverridesDefault(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotAuth = request.Header.Get("Authorization")
		writer.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{RootURL: server.URL, Token: "default"})
	client.Call(context.Background(), RoomsPath, CallOptions{Token: "override"})

	if gotAuth != "Bearer override" {
		t.Errorf("Authorization = %q, want Bearer override", gotAuth)
	}
}

func TestCallSerializesBody(t *testing.T) {
	t.Parallel()

	var gotBody CreateRoomRequest
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if err := json.NewDecoder(request.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"id":"r1","name":"Lab A","capacity":4}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{RootURL: server.URL})
	result := client.Call(context.Background(), RoomsPath, CallOptions{
		Method: http.MethodPost,
		Body:   CreateRoomRequest{Name: "Lab A", Capacity: 4},
	})

	if !result.Succeeded || result.StatusCode != http.StatusCreated {
		t.Fatalf("result = %+v, want 201 success", result)
	}
	if gotBody.Name != "Lab A" || gotBody.Capacity != 4 {
		t.Errorf("request body = %+v, want {Lab A 4}", gotBody)
	}
}

func TestCallRejectionExtractsJSONDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		writer.Write([]byte(`{"detail":"overlapping booking"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{RootURL: server.URL})
	result := client.Call(context.Background(), RoomsPath, CallOptions{Method: http.MethodPost})

	if result.Succeeded {
		t.Fatal("Succeeded = true for a 400 response")
	}
	if result.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", result.StatusCode)
	}
	if result.Detail != "overlapping booking" {
		t.Errorf("Detail = %q, want server detail field", result.Detail)
	}
}

func TestCallRejectionKeepsRawTextBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{RootURL: server.URL})
	result := client.Call(context.Background(), RoomsPath, CallOptions{})

	if result.Succeeded {
		t.Fatal("Succeeded = true for a 502 response")
	}
	if result.Detail != "upstream unavailable" {
		t.Errorf("Detail = %q, want raw body text", result.Detail)
	}
}

func TestCallNetworkFailureNeverErrors(t *testing.T) {
	t.Parallel()

	// Point at a server that is already closed so the dial fails.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{RootURL: server.URL})
	result := client.Call(context.Background(), RoomsPath, CallOptions{})

	if result.Succeeded {
		t.Fatal("Succeeded = true for an unreachable server")
	}
	if result.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 when no response was obtained", result.StatusCode)
	}
	if result.Detail == "" {
		t.Error("Detail empty, want the network error message")
	}
}

func TestCallUnserializableBody(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{RootURL: "http://localhost:0"})
	result := client.Call(context.Background(), RoomsPath, CallOptions{
		Method: http.MethodPost,
		Body:   make(chan int), // not JSON-serializable
	})

	if result.Succeeded {
		t.Fatal("Succeeded = true for an unserializable body")
	}
	if result.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", result.StatusCode)
	}
}
