// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package host

// shellCommand returns the platform shell invocation for command.
func shellCommand(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}
