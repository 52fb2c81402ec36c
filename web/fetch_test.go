// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// SUCCESS PATH TESTS
// =============================================================================

func TestFetchJSON_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok": true, "n": 3}`)
	}))
	defer server.Close()

	got, err := NewClient().FetchJSON(context.Background(), http.MethodGet, server.URL, nil, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"ok": true, "n": float64(3)}, got)
}

func TestFetchJSON_SerializesObjectBody(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `null`)
	}))
	defer server.Close()

	_, err := NewClient().FetchJSON(context.Background(), http.MethodPost, server.URL,
		map[string]string{"k": "v"}, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"k":"v"}`, gotBody)
	require.Equal(t, "application/json", gotContentType)
}

func TestFetchJSON_ReaderBodyPassesThrough(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	_, err := NewClient().FetchJSON(context.Background(), http.MethodPost, server.URL,
		strings.NewReader("raw payload"), nil)
	require.NoError(t, err)
	require.Equal(t, "raw payload", gotBody)
	require.Empty(t, gotContentType, "reader bodies must not get a forced content type")
}

func TestFetchJSON_HeaderMerge(t *testing.T) {
	var gotAccept, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotCustom = r.Header.Get("X-Custom")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	_, err := NewClient().FetchJSON(context.Background(), http.MethodGet, server.URL, nil,
		map[string]string{"Accept": "application/vnd.custom+json", "X-Custom": "yes"})
	require.NoError(t, err)
	require.Equal(t, "application/vnd.custom+json", gotAccept, "caller headers override defaults")
	require.Equal(t, "yes", gotCustom)
}

// =============================================================================
// SENTINEL AND ERROR PATH TESTS
// =============================================================================

func TestFetchJSON_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	got, err := NewClient().FetchJSON(context.Background(), http.MethodGet, server.URL, nil, nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFetchJSON_NonJSONContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "not json")
	}))
	defer server.Close()

	got, err := NewClient().FetchJSON(context.Background(), http.MethodGet, server.URL, nil, nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFetchJSON_ErrorEmbedsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "short and stout")
	}))
	defer server.Close()

	_, err := NewClient().FetchJSON(context.Background(), http.MethodGet, server.URL, nil, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusTeapot, statusErr.Code)
	require.Contains(t, err.Error(), "418")
	require.Contains(t, err.Error(), "short and stout")
}

func TestFetchJSON_UnencodableBody(t *testing.T) {
	_, err := NewClient().FetchJSON(context.Background(), http.MethodPost,
		"http://127.0.0.1:0", func() {}, nil)
	require.Error(t, err, "unencodable body must fail before any request is sent")
}
