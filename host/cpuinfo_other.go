// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !linux

package host

import "runtime"

// cpuList reports logical count only; per-CPU details need a
// platform-specific source this build does not have.
func cpuList() []CPUInfo {
	cpus := make([]CPUInfo, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = CPUInfo{Model: runtime.GOARCH}
	}
	return cpus
}
