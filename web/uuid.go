// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import "github.com/google/uuid"

// NewUUID returns a random (version 4) UUID string.
//
// Both catalogs carry a UUID generator; the aggregated export surface
// resolves the name collision in favor of the host version.
func NewUUID() string {
	return uuid.NewString()
}
