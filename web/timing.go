// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// DEBOUNCE
// =============================================================================

// Debounce returns a wrapper that delays invoking fn until delay has
// elapsed since the wrapper's most recent call. Each call resets the
// pending timer, so only the last call's argument is ever forwarded.
//
// fn runs on a timer goroutine, outside any caller's stack; a panic in
// fn is recovered and reported to stderr rather than crashing the
// process. There is no external cancellation: invoking the wrapper
// again resets the timer, and a timer left alone fires once and is
// discarded.
func Debounce[T any](delay time.Duration, fn func(T)) func(T) {
	var mu sync.Mutex
	var timer *time.Timer
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "helpers: debounced callback panicked: %v\n", r)
				}
			}()
			fn(arg)
		})
	}
}

// =============================================================================
// THROTTLE
// =============================================================================

// Throttle returns a wrapper around fn that executes at most once per
// limit window. The first call in an open window executes fn
// synchronously and starts the cooling period; calls during cooling are
// dropped. The window reopens automatically once limit elapses.
func Throttle[T any](limit time.Duration, fn func(T)) func(T) {
	limiter := rate.NewLimiter(rate.Every(limit), 1)
	return func(arg T) {
		if limiter.Allow() {
			fn(arg)
		}
	}
}
