// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import "testing"

func TestEnv(t *testing.T) {
	t.Setenv("HELPERS_TEST_VAR", "set")

	if got, ok := Env("HELPERS_TEST_VAR"); !ok || got != "set" {
		t.Errorf("Env = (%q, %v), want (set, true)", got, ok)
	}
	if got, ok := Env("HELPERS_TEST_VAR_MISSING"); ok || got != "" {
		t.Errorf("Env on missing var = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("HELPERS_TEST_EMPTY", "")

	if got := EnvDefault("HELPERS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("EnvDefault on missing var = %q, want fallback", got)
	}
	// A set-but-empty variable counts as present.
	if got := EnvDefault("HELPERS_TEST_EMPTY", "fallback"); got != "" {
		t.Errorf("EnvDefault on empty var = %q, want empty", got)
	}
}
