// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import "os"

// Env returns the value of the named environment variable.
// The second return distinguishes an unset variable from one set to the
// empty string.
func Env(name string) (string, bool) {
	return os.LookupEnv(name)
}

// EnvDefault returns the value of the named environment variable, or
// fallback when it is unset. A variable set to "" is returned as "".
func EnvDefault(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}
