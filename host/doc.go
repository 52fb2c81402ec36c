// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
//
// The catalog wraps single system calls: filesystem operations, path
// manipulation, environment lookup, shell execution, OS and hardware
// introspection, cryptographic primitives, and a debounced filesystem
// watcher.
//
// # Error policy
//
// Policy is per function, matching the contracts this catalog mirrors:
// existence checks swallow to false, most I/O propagates errors
// unmodified, and Decrypt wraps failures with a "decrypt:" prefix. Each
// function documents which side it is on.
package host
