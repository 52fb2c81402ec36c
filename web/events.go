// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/net/html"
)

// =============================================================================
// EVENTS
// =============================================================================

// Event is a dispatched occurrence. Target is the node the event
// originated from; it may be nil for synthetic events with no source.
type Event struct {
	Type   string
	Target *html.Node
}

// Handler receives dispatched events.
type Handler func(Event)

// ListenerOptions controls listener registration.
// Once removes the listener after its first delivery. Capture is
// accepted for interface parity with the platform option object; the
// dispatcher has a single phase, so it does not affect ordering.
type ListenerOptions struct {
	Once    bool
	Capture bool
}

// listener is one registration inside a Dispatcher.
type listener struct {
	id       int
	fn       Handler
	opts     ListenerOptions
	selector string // non-empty for delegated listeners
}

// Dispatcher routes events to registered listeners by event type.
// The zero value is not usable; create one with NewDispatcher.
// All methods are safe for concurrent use.
type Dispatcher struct {
	mu        sync.Mutex
	seq       int
	listeners map[string][]*listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[string][]*listener)}
}

// On registers fn for events of the given type and returns a function
// that removes the registration. A nil fn is a no-op registration whose
// off function does nothing.
func (d *Dispatcher) On(eventType string, fn Handler, opts ...ListenerOptions) (off func()) {
	return d.register(eventType, "", fn, mergeOptions(opts))
}

// Once registers fn for a single delivery. It is On with the
// auto-remove flag forced on, whatever the caller passed in opts.
func (d *Dispatcher) Once(eventType string, fn Handler, opts ...ListenerOptions) (off func()) {
	merged := mergeOptions(opts)
	merged.Once = true
	return d.register(eventType, "", fn, merged)
}

// Delegate registers fn for events of the given type whose direct
// target matches selector. Matching considers only the exact node the
// event originated from - there is no ancestor walk, so events from
// descendants of a matching container do not fire the callback. That
// narrow behavior is a contract property of this toolbelt, not a bug;
// use Closest if ancestor semantics are needed.
//
// A selector that does not compile never matches, indistinguishable
// from "no match".
func (d *Dispatcher) Delegate(eventType, selector string, fn Handler) (off func()) {
	return d.register(eventType, selector, fn, ListenerOptions{})
}

// mergeOptions folds the variadic options into one value, later entries
// overriding earlier ones. This is the Go rendering of the platform's
// boolean-or-object options normalization.
func mergeOptions(opts []ListenerOptions) ListenerOptions {
	var merged ListenerOptions
	for _, o := range opts {
		merged = o
	}
	return merged
}

func (d *Dispatcher) register(eventType, selector string, fn Handler, opts ListenerOptions) (off func()) {
	if fn == nil || eventType == "" {
		return func() {}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	l := &listener{id: d.seq, fn: fn, opts: opts, selector: selector}
	d.listeners[eventType] = append(d.listeners[eventType], l)
	id := l.id
	return func() { d.remove(eventType, id) }
}

func (d *Dispatcher) remove(eventType string, id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current := d.listeners[eventType]
	kept := current[:0]
	for _, l := range current {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(d.listeners, eventType)
		return
	}
	d.listeners[eventType] = kept
}

// Dispatch delivers ev to every matching listener in registration
// order. One-shot listeners are deregistered before their handler runs,
// so re-dispatching from inside a handler cannot fire them twice.
// A panicking handler is reported to stderr and does not stop delivery
// to the remaining listeners.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	registered := d.listeners[ev.Type]
	due := make([]*listener, 0, len(registered))
	kept := registered[:0]
	for _, l := range registered {
		if l.selector != "" && !Matches(ev.Target, l.selector) {
			kept = append(kept, l)
			continue
		}
		due = append(due, l)
		if !l.opts.Once {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(d.listeners, ev.Type)
	} else {
		d.listeners[ev.Type] = kept
	}
	d.mu.Unlock()

	for _, l := range due {
		invokeHandler(l.fn, ev)
	}
}

// invokeHandler runs one handler with panic containment.
func invokeHandler(fn Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "helpers: event handler for %q panicked: %v\n", ev.Type, r)
		}
	}()
	fn(ev)
}
