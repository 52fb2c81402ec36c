// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import "testing"

func TestGetCookie(t *testing.T) {
	testCases := []struct {
		name    string
		cookies string
		lookup  string
		value   string
		ok      bool
	}{
		{"simple", "a=1; b=2", "b", "2", true},
		{"first", "a=1; b=2", "a", "1", true},
		{"missing", "a=1; b=2", "c", "", false},
		{"empty value", "name=; other=x", "name", "", true},
		{"value with equals", "token=a=b=c", "token", "a=b=c", true},
		{"whitespace", "  spaced  =  v  ", "spaced", "v", true},
		{"case sensitive", "Name=1", "name", "", false},
		{"empty string", "", "a", "", false},
		{"empty name", "a=1", "", "", false},
		{"flag without equals", "secure; a=1", "secure", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := GetCookie(tc.cookies, tc.lookup)
			if value != tc.value || ok != tc.ok {
				t.Errorf("GetCookie(%q, %q) = (%q, %v), want (%q, %v)",
					tc.cookies, tc.lookup, value, ok, tc.value, tc.ok)
			}
		})
	}
}
