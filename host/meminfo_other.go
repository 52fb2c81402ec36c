// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !linux

package host

import "time"

func memoryInfo() (*MemoryInfo, error) {
	return nil, ErrUnsupportedPlatform
}

func uptime() (time.Duration, error) {
	return 0, ErrUnsupportedPlatform
}
