// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build linux

package host

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// cpuList reads /proc/cpuinfo, one entry per "processor" stanza.
// Falls back to runtime.NumCPU generic entries when the file is
// unreadable or yields nothing.
func cpuList() []CPUInfo {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return genericCPUList()
	}
	defer f.Close()

	var cpus []CPUInfo
	var current *CPUInfo
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "processor":
			cpus = append(cpus, CPUInfo{})
			current = &cpus[len(cpus)-1]
		case "model name":
			if current != nil {
				current.Model = value
			}
		case "cpu MHz":
			if current != nil {
				if mhz, err := strconv.ParseFloat(value, 64); err == nil {
					current.MHz = mhz
				}
			}
		}
	}
	if len(cpus) == 0 {
		return genericCPUList()
	}
	return cpus
}

// genericCPUList reports logical count only.
func genericCPUList() []CPUInfo {
	cpus := make([]CPUInfo, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = CPUInfo{Model: runtime.GOARCH}
	}
	return cpus
}
