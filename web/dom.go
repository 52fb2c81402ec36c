// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// =============================================================================
// CLASS MUTATION
// =============================================================================

// validClassToken reports whether class is a usable class token.
// Empty tokens and tokens containing whitespace mirror the platform's
// InvalidCharacterError cases and are treated as no-ops by the mutators.
func validClassToken(class string) bool {
	if class == "" {
		return false
	}
	return !strings.ContainsAny(class, " \t\n\f\r")
}

// classList returns the element's class attribute split into tokens.
func classList(n *html.Node) []string {
	raw, ok := GetAttribute(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}

// setClassList writes the token list back to the class attribute.
func setClassList(n *html.Node, classes []string) {
	SetAttribute(n, "class", strings.Join(classes, " "))
}

// AddClass adds a class token to the element.
// A nil node, an invalid token, or a token already present is a no-op.
func AddClass(n *html.Node, class string) {
	if n == nil || n.Type != html.ElementNode || !validClassToken(class) {
		return
	}
	classes := classList(n)
	for _, c := range classes {
		if c == class {
			return
		}
	}
	setClassList(n, append(classes, class))
}

// RemoveClass removes a class token from the element.
// A nil node or an invalid token is a no-op.
func RemoveClass(n *html.Node, class string) {
	if n == nil || n.Type != html.ElementNode || !validClassToken(class) {
		return
	}
	classes := classList(n)
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(classes) {
		setClassList(n, kept)
	}
}

// ToggleClass adds the class token if absent and removes it if present.
func ToggleClass(n *html.Node, class string) {
	if n == nil || n.Type != html.ElementNode || !validClassToken(class) {
		return
	}
	if HasClass(n, class) {
		RemoveClass(n, class)
		return
	}
	AddClass(n, class)
}

// HasClass reports whether the element carries the class token.
// Returns false for a nil node or invalid token.
func HasClass(n *html.Node, class string) bool {
	if n == nil || !validClassToken(class) {
		return false
	}
	for _, c := range classList(n) {
		if c == class {
			return true
		}
	}
	return false
}

// =============================================================================
// ATTRIBUTES AND STYLE
// =============================================================================

// GetAttribute returns the value of the named attribute.
// The second return is false when the node is nil or the attribute is absent.
func GetAttribute(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets the named attribute, replacing any existing value.
// A nil node or empty name is a no-op.
func SetAttribute(n *html.Node, name, value string) {
	if n == nil || name == "" {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// SetStyle sets one CSS property inside the element's style attribute,
// preserving the other declarations. A nil node or empty property name
// is a no-op.
func SetStyle(n *html.Node, property, value string) {
	if n == nil || property == "" {
		return
	}
	raw, _ := GetAttribute(n, "style")
	var decls []string
	replaced := false
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(name) == property {
			decls = append(decls, property+": "+value)
			replaced = true
			continue
		}
		decls = append(decls, decl)
	}
	if !replaced {
		decls = append(decls, property+": "+value)
	}
	SetAttribute(n, "style", strings.Join(decls, "; "))
}

// Hide hides the element by setting "display: none" on its style attribute.
func Hide(n *html.Node) {
	SetStyle(n, "display", "none")
}

// =============================================================================
// TREE MUTATION
// =============================================================================

// RemoveNode detaches the node from its parent.
// A nil or parentless node is a no-op.
func RemoveNode(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// CreateElement creates a detached element node with the given tag name.
// Returns nil for an empty tag.
func CreateElement(tag string) *html.Node {
	if tag == "" {
		return nil
	}
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}
