// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the file descriptor is attached to a
// terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal, the usual test for "a human is driving this process".
func IsInteractive() bool {
	return IsTerminal(os.Stdin.Fd()) && IsTerminal(os.Stdout.Fd())
}
