// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package roomapi is the HTTP transport for the meeting-room booking
// service. It exposes a single generic call primitive plus the wire
// types and decoders for the service's resources.
//
// The transport has one deliberately unusual contract: it never fails
// by returning an error. Every outcome — a 2xx response, a rejection,
// a connection refused, a malformed body — is folded into the uniform
// Result value. All code above the transport is written against that
// guarantee and performs no error handling of its own beyond checking
// Result.Succeeded.
package roomapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// RootURL is the base URL of the booking service
	// (e.g., "http://localhost:8000/api"). Required.
	RootURL string

	// Token is the bearer token attached to requests that don't
	// supply their own. May be empty for anonymous access.
	Token string

	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client performs HTTP requests against the booking service.
type Client struct {
	rootURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a booking service client. The root URL is stored
// with any trailing slash stripped; request URLs are built by direct
// concatenation with the resource path.
func NewClient(config ClientConfig) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		rootURL:    strings.TrimRight(config.RootURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SetToken replaces the client's default bearer token. The client
// never refreshes or mutates the token on its own — it is externally
// supplied and process-wide.
func (client *Client) SetToken(token string) {
	client.token = token
}

// CallOptions selects the method, credential, and payload for one call.
// The zero value is a GET with the client's default token and no body.
type CallOptions struct {
	// Method is the HTTP method. Empty means GET. Custom actions
	// (like the booking cancel endpoint) are ordinary POSTs to an
	// action path.
	Method string

	// Token overrides the client's default token for this call.
	// When empty the default applies; when neither is set, no
	// Authorization header is attached.
	Token string

	// Body is serialized as JSON when non-nil.
	Body any
}

// Result is the uniform outcome of one transport call.
type Result struct {
	// Succeeded is true iff the response status was in the 2xx range.
	// It says nothing about the payload's shape.
	Succeeded bool

	// StatusCode is the HTTP status, or 0 when no response was
	// obtained (network failure, connection refused, context
	// cancellation at the socket layer).
	StatusCode int

	// Body is the raw response body. Nil when no response was
	// obtained.
	Body []byte

	// Detail is a human-readable failure description: the error
	// message for network failures, the server's "detail" field for
	// JSON rejections, or the raw body text when the rejection body
	// is not JSON. Empty on success.
	Detail string
}

// Call performs one request against the booking service. It attaches
// the JSON content type, the bearer token (if any), serializes the
// body, and reads the full response. It never returns an error: see
// the package comment. There is no timeout policy — a call runs until
// the response arrives or the underlying transport gives up.
func (client *Client) Call(ctx context.Context, path string, options CallOptions) Result {
	method := options.Method
	if method == "" {
		method = http.MethodGet
	}

	token := options.Token
	if token == "" {
		token = client.token
	}

	var bodyReader io.Reader
	if options.Body != nil {
		encoded, err := json.Marshal(options.Body)
		if err != nil {
			return Result{StatusCode: 0, Detail: "encoding request body: " + err.Error()}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.rootURL+path, bodyReader)
	if err != nil {
		return Result{StatusCode: 0, Detail: "building request: " + err.Error()}
	}
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Debug("transport failure", "method", method, "path", path, "error", err)
		return Result{StatusCode: 0, Detail: err.Error()}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return Result{StatusCode: 0, Detail: "reading response body: " + err.Error()}
	}

	result := Result{
		Succeeded:  response.StatusCode >= 200 && response.StatusCode < 300,
		StatusCode: response.StatusCode,
		Body:       body,
	}
	if !result.Succeeded {
		result.Detail = rejectionDetail(body)
		client.logger.Debug("request rejected",
			"method", method, "path", path, "status", response.StatusCode, "detail", result.Detail)
	}
	return result
}

// rejectionDetail extracts the conventional "detail" field from a JSON
// rejection body. Non-JSON bodies are returned as raw text rather than
// discarded — the service's error pages are still worth showing.
func rejectionDetail(body []byte) string {
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	return strings.TrimSpace(string(body))
}
