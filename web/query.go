// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// =============================================================================
// SELECTOR QUERIES
// =============================================================================

// Selector queries swallow failure: a nil scope, a selector that does
// not compile, or no match all yield the same sentinel (nil, empty
// slice, false). Callers cannot distinguish a malformed selector from
// "no match" - deliberate contract carried over from the sibling
// implementations.

// compileSelector compiles sel, returning nil on any parse failure.
func compileSelector(sel string) cascadia.Selector {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil
	}
	return s
}

// QuerySelector returns the first descendant of scope matching sel, in
// document order. Returns nil on a nil scope, invalid selector, or no
// match.
func QuerySelector(scope *html.Node, sel string) *html.Node {
	matches := querySelector(scope, sel, true)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// QuerySelectorAll returns all descendants of scope matching sel, in
// document order, as a materialized slice. Returns an empty slice on a
// nil scope, invalid selector, or no match.
func QuerySelectorAll(scope *html.Node, sel string) []*html.Node {
	return querySelector(scope, sel, false)
}

// querySelector is the shared walk behind QuerySelector and
// QuerySelectorAll.
func querySelector(scope *html.Node, sel string, firstOnly bool) []*html.Node {
	matches := []*html.Node{}
	if scope == nil {
		return matches
	}
	s := compileSelector(sel)
	if s == nil {
		return matches
	}
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && s.Match(c) {
				matches = append(matches, c)
				if firstOnly {
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(scope)
	return matches
}

// Matches reports whether the node itself matches sel.
// Returns false for a nil node or invalid selector.
func Matches(n *html.Node, sel string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	s := compileSelector(sel)
	if s == nil {
		return false
	}
	return s.Match(n)
}

// Closest returns the nearest ancestor of n (including n itself) that
// matches sel, or nil. This is the one place with ancestor-walk
// semantics; event delegation deliberately does not have them.
func Closest(n *html.Node, sel string) *html.Node {
	if n == nil {
		return nil
	}
	s := compileSelector(sel)
	if s == nil {
		return nil
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && s.Match(cur) {
			return cur
		}
	}
	return nil
}

// =============================================================================
// QUERY STRING PARSING
// =============================================================================

// ParseQueryParams parses a query string ("?a=1&b=2" or "a=1&b=2") into
// a map. When a key occurs more than once the last occurrence wins.
// Values are URL-unescaped; a value that fails to unescape is kept raw.
func ParseQueryParams(raw string) map[string]string {
	params := map[string]string{}
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return params
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		if key == "" {
			continue
		}
		params[key] = value
	}
	return params
}
