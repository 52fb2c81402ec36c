// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
//
// Storage tests cover the JSON round trip and the deliberately
// asymmetric error contracts of the set/get pair.
package web

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenStorage(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// =============================================================================
// ROUND TRIP TESTS
// =============================================================================

func TestStorage_RoundTrip(t *testing.T) {
	s := openTestStorage(t)

	// Decoded JSON comes back as float64/map[string]any/[]any, so
	// expectations are phrased in those shapes.
	testCases := []struct {
		name     string
		value    any
		expected any
	}{
		{"string", "hello", "hello"},
		{"number", 42, float64(42)},
		{"bool", true, true},
		{"null", nil, nil},
		{"array", []any{"a", float64(1)}, []any{"a", float64(1)}},
		{"object", map[string]any{"k": "v", "n": float64(2)}, map[string]any{"k": "v", "n": float64(2)}},
		{"nested", map[string]any{"list": []any{float64(1), map[string]any{"x": true}}},
			map[string]any{"list": []any{float64(1), map[string]any{"x": true}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, s.SetJSON("key", tc.value), "SetJSON should succeed")
			got, err := s.GetJSON("key")
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestStorage_MissingKey(t *testing.T) {
	s := openTestStorage(t)
	got, err := s.GetJSON("absent")
	require.NoError(t, err)
	require.Nil(t, got)
}

// TestStorage_SetSwallowsEncodingFailure covers the swallow half of the
// asymmetric pair: unmarshalable values report false, never an error.
func TestStorage_SetSwallowsEncodingFailure(t *testing.T) {
	s := openTestStorage(t)

	require.False(t, s.SetJSON("fn", func() {}), "function value should not encode")
	require.False(t, s.SetJSON("ch", make(chan int)), "channel value should not encode")

	// The failed set must not leave a value behind
	got, err := s.GetJSON("fn")
	require.NoError(t, err)
	require.Nil(t, got)
}

// TestStorage_GetPropagatesDecodeFailure covers the propagate half:
// a stored value that is not valid JSON surfaces the decode error
// rather than swallowing to nil.
func TestStorage_GetPropagatesDecodeFailure(t *testing.T) {
	s := openTestStorage(t)

	// Plant a corrupt value directly, bypassing SetJSON's encoder.
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, "corrupt", `{not json`)
	require.NoError(t, err)

	got, err := s.GetJSON("corrupt")
	require.Error(t, err, "decode failure must propagate")
	require.Nil(t, got)

	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr, "the decoder's own error comes back unmodified")
}

func TestStorage_Overwrite(t *testing.T) {
	s := openTestStorage(t)
	require.True(t, s.SetJSON("k", "first"))
	require.True(t, s.SetJSON("k", "second"))
	got, err := s.GetJSON("k")
	require.NoError(t, err)
	require.Equal(t, "second", got)
}

func TestStorage_Remove(t *testing.T) {
	s := openTestStorage(t)
	require.True(t, s.SetJSON("k", "v"))
	require.NoError(t, s.Remove("k"))
	got, err := s.GetJSON("k")
	require.NoError(t, err)
	require.Nil(t, got)

	// Removing an absent key is not an error
	require.NoError(t, s.Remove("never-there"))
}

func TestStorage_Keys(t *testing.T) {
	s := openTestStorage(t)
	require.True(t, s.SetJSON("b", 1))
	require.True(t, s.SetJSON("a", 2))
	keys, err := s.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestStorage_ClosedHandle(t *testing.T) {
	s := openTestStorage(t)
	require.NoError(t, s.Close())
	require.False(t, s.SetJSON("k", "v"), "set on closed store swallows to false")
	_, err := s.GetJSON("k")
	require.Error(t, err, "get on closed store propagates")
}
