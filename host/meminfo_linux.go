// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build linux

package host

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// memoryInfo reads memory totals via sysinfo(2).
func memoryInfo() (*MemoryInfo, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return nil, fmt.Errorf("sysinfo failed: %w", err)
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	return &MemoryInfo{
		TotalBytes:     uint64(si.Totalram) * unit,
		FreeBytes:      uint64(si.Freeram) * unit,
		AvailableBytes: (uint64(si.Freeram) + uint64(si.Bufferram)) * unit,
	}, nil
}

// uptime reads the system uptime via sysinfo(2).
func uptime() (time.Duration, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, fmt.Errorf("sysinfo failed: %w", err)
	}
	return time.Duration(si.Uptime) * time.Second, nil
}
