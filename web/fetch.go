// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// StatusError is returned by FetchJSON for non-success responses.
// It embeds the numeric status code, the status text, and the response
// body read as text so the call site can log or branch without a second
// request.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: %d %s: %s", e.Code, e.Status, e.Body)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the fetch client.
type ClientConfig struct {
	// Timeout for the whole request/response cycle (default: 30s)
	Timeout time.Duration

	// UserAgent sent with every request (default: "helpers-fetch")
	UserAgent string

	// HTTPClient overrides the underlying client; when set, Timeout is
	// ignored in favor of the caller's transport settings.
	HTTPClient *http.Client
}

// DefaultClientConfig returns the default fetch client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:   30 * time.Second,
		UserAgent: "helpers-fetch",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client issues JSON-oriented HTTP requests.
// It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a fetch client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultClientConfig())
}

// NewClientWithConfig creates a fetch client with custom configuration.
// Zero fields are filled with defaults.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "helpers-fetch"
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	return &Client{config: config, httpClient: httpClient}
}

// FetchJSON issues exactly one request/response cycle and returns the
// decoded JSON response.
//
// Body handling: a nil body sends no payload; an io.Reader or []byte
// body is sent untouched (the form-data analog); anything else is
// JSON-marshaled and Content-Type is set to application/json.
//
// Header handling: "Accept: application/json" is applied first, then
// caller headers are merged over the defaults.
//
// Response handling: a non-2xx status reads the body as text and
// returns a *StatusError embedding code, status text, and body. A 204
// response, or one whose Content-Type is not JSON, returns (nil, nil).
// Otherwise the body is decoded and returned.
//
// No retries, no streaming; timeout behavior comes from the client
// configuration and the caller's context.
func (c *Client) FetchJSON(ctx context.Context, method, url string, body any, headers map[string]string) (any, error) {
	payload, contentType, err := encodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(string(text)),
		}
	}

	if resp.StatusCode == http.StatusNoContent || !isJSONContentType(resp.Header.Get("Content-Type")) {
		return nil, nil
	}

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return decoded, nil
}

// encodeBody prepares the request payload. Readers and raw bytes pass
// through; other non-nil values are JSON-marshaled.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return b, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(encoded), "application/json", nil
	}
}

// isJSONContentType reports whether a Content-Type header denotes JSON,
// including structured suffixes like application/problem+json.
func isJSONContentType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
