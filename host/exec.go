// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// =============================================================================
// COMMAND EXECUTION
// =============================================================================

// CommandResult captures the outcome of one command execution.
type CommandResult struct {
	// Stdout is the captured standard output, trailing newline trimmed.
	Stdout string
	// Stderr is the captured standard error, trailing newline trimmed.
	Stderr string
	// ExitCode is the process exit status. -1 when the process did not
	// run or was killed (including context cancellation).
	ExitCode int
}

// RunCommand runs one command with the given arguments and captures
// stdout, stderr and the exit status.
//
// CANCELLATION: Context enables timeout and cancellation; no timeout is
// imposed here beyond what the caller's context carries.
//
// A non-zero exit returns both the populated result and the error, so
// call sites can inspect stderr without re-running.
func RunCommand(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &CommandResult{
		Stdout:   strings.TrimRight(stdout.String(), "\n"),
		Stderr:   strings.TrimRight(stderr.String(), "\n"),
		ExitCode: exitCode(err),
	}
	return result, err
}

// RunShell runs command through the platform shell ("sh -c" on Unix,
// "cmd /C" on Windows) and captures its output like RunCommand.
func RunShell(ctx context.Context, command string) (*CommandResult, error) {
	name, args := shellCommand(command)
	return RunCommand(ctx, name, args...)
}

// exitCode extracts the exit status from a Run error.
// nil means success (0); a non-ExitError failure reports -1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
