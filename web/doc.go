// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
//
// The catalog operates on parsed HTML documents (golang.org/x/net/html
// node handles), a persistent JSON key-value store, cookie strings,
// timing wrappers, an event dispatcher, a JSON fetch client, and the
// system clipboard.
//
// # Contracts
//
// Most functions follow the swallow-to-sentinel contract: a nil node,
// an invalid selector, or a failed platform call yields a no-op, nil,
// false, or an empty slice rather than an error. The functions that do
// return errors (Storage.GetJSON, Client.FetchJSON, WriteClipboard)
// document it explicitly.
//
// Node handles are owned by the caller's parse tree; this package never
// frees or re-parents them except where an operation says so
// (RemoveNode).
package web
