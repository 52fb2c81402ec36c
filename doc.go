// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package helpers is the aggregated export surface of the toolbelt.
//
// It merges the web catalog (document, storage, cookie, timing, event,
// fetch and clipboard helpers) and the host catalog (filesystem, path,
// process, OS-introspection and crypto helpers) behind one import path.
// The catalogs remain independently importable as
// .../web and .../host; this package only re-exports them.
//
// The one naming collision between the catalogs - both carry a UUID
// generator - is resolved in favor of the host version.
package helpers
