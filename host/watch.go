// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// PATH WATCHER
// =============================================================================

// defaultWatchDebounce coalesces editor write bursts into one callback.
const defaultWatchDebounce = 500 * time.Millisecond

// WatchPath watches path (a file or directory, non-recursive) and
// invokes fn with the affected path after changes settle for the
// debounce window. A non-positive debounce uses the default.
//
// CANCELLATION: The watcher stops when ctx is cancelled or when the
// returned stop function is called, whichever comes first. fn runs on
// the watcher goroutine; long work should be handed off by the caller.
func WatchPath(ctx context.Context, path string, debounce time.Duration, fn func(path string)) (stop func() error, err error) {
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	var once sync.Once
	stop = func() error {
		var cerr error
		once.Do(func() {
			cancel()
			cerr = watcher.Close()
		})
		return cerr
	}

	go func() {
		// Pending changes by path; flushed once quiet for the window.
		pending := make(map[string]time.Time)
		ticker := time.NewTicker(debounce / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					pending[event.Name] = time.Now()
				}
			case <-watcher.Errors:
				// Watch errors are not deliverable through fn's
				// signature; the watcher keeps running.
			case now := <-ticker.C:
				for p, last := range pending {
					if now.Sub(last) >= debounce {
						delete(pending, p)
						fn(p)
					}
				}
			}
		}
	}()

	return stop, nil
}
