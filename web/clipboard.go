// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import "github.com/atotto/clipboard"

// WriteClipboard writes text to the system clipboard.
// Failure modes (no clipboard utility installed, headless session) are
// surfaced verbatim to the caller.
func WriteClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// ReadClipboard returns the current text content of the system
// clipboard. Errors are surfaced verbatim.
func ReadClipboard() (string, error) {
	return clipboard.ReadAll()
}
