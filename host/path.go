// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import "path/filepath"

// Path helpers are pure string operations; no path is checked against
// the filesystem and no validation happens beyond what filepath does.

// JoinPath joins any number of path elements with the OS separator,
// cleaning the result.
func JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}

// ResolvePath returns the absolute form of path, resolving against the
// current working directory when relative.
func ResolvePath(path string) (string, error) {
	return filepath.Abs(path)
}

// Basename returns the last element of path.
func Basename(path string) string {
	return filepath.Base(path)
}

// Dirname returns all but the last element of path.
func Dirname(path string) string {
	return filepath.Dir(path)
}

// Extname returns the file extension of path, including the dot, or ""
// when there is none.
func Extname(path string) string {
	return filepath.Ext(path)
}
