// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchPath_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watched.txt")
	if err := WriteFileText(file, "v1"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	changed := make(chan string, 8)
	stop, err := WatchPath(context.Background(), dir, 50*time.Millisecond, func(path string) {
		changed <- path
	})
	if err != nil {
		t.Fatalf("WatchPath failed: %v", err)
	}
	defer stop()

	if err := WriteFileText(file, "v2"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Atomic writes emit events for the temp file too; wait for the
	// notification naming the final path.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case path := <-changed:
			if filepath.Base(path) == "watched.txt" {
				return
			}
		case <-deadline:
			t.Fatal("no change notification for watched.txt within 5s")
		}
	}
}

func TestWatchPath_StopIsIdempotent(t *testing.T) {
	stop, err := WatchPath(context.Background(), t.TempDir(), 0, func(string) {})
	if err != nil {
		t.Fatalf("WatchPath failed: %v", err)
	}
	if err := stop(); err != nil {
		t.Errorf("first stop failed: %v", err)
	}
	if err := stop(); err != nil {
		t.Errorf("second stop failed: %v", err)
	}
}

func TestWatchPath_MissingPath(t *testing.T) {
	_, err := WatchPath(context.Background(), filepath.Join(t.TempDir(), "nope"), 0, func(string) {})
	if err == nil {
		t.Error("watching a missing path should fail")
	}
}
