// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import "strings"

// GetCookie scans a semicolon-delimited cookie string for the named
// cookie and returns its value. The second return is false when no
// cookie with that name exists, which distinguishes an absent cookie
// from one that is present with an empty value ("", true).
//
// Matching is case-sensitive. Each segment is trimmed and split on its
// first "=", so values containing "=" survive intact. This package only
// reads cookie strings; it never writes them.
func GetCookie(cookies, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, segment := range strings.Split(cookies, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		if strings.TrimSpace(key) == name {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}
