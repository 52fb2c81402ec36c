// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
package host

import (
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"
	"time"
)

// ErrUnsupportedPlatform is returned by introspection calls that have
// no data source on the current platform.
var ErrUnsupportedPlatform = errors.New("not supported on this platform")

// =============================================================================
// TYPES
// =============================================================================

// CPUInfo describes one logical CPU.
type CPUInfo struct {
	// Model is the processor model string, "" when unavailable.
	Model string
	// MHz is the reported clock speed, 0 when unavailable.
	MHz float64
}

// String returns a formatted representation of the CPU.
func (c CPUInfo) String() string {
	if c.MHz > 0 {
		return fmt.Sprintf("%s @ %.0f MHz", c.Model, c.MHz)
	}
	return c.Model
}

// MemoryInfo holds system memory totals in bytes.
// AvailableBytes counts memory reclaimable without swapping (free plus
// buffers); it is at least FreeBytes.
type MemoryInfo struct {
	TotalBytes     uint64
	FreeBytes      uint64
	AvailableBytes uint64
}

// InterfaceInfo describes one network interface.
type InterfaceInfo struct {
	Name      string
	MAC       string
	Addresses []string
	Up        bool
}

// =============================================================================
// INTROSPECTION
// =============================================================================

// Hostname returns the host name reported by the kernel.
func Hostname() (string, error) {
	return os.Hostname()
}

// Platform returns the "os/arch" pair for the running binary.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// CPUs returns one entry per logical CPU. On Linux the model and clock
// come from /proc/cpuinfo; elsewhere only the logical count is known
// and entries carry the generic platform string.
func CPUs() []CPUInfo {
	return cpuList()
}

// Memory returns the system memory totals.
// Supported on Linux via sysinfo(2); other platforms report an
// unsupported error.
func Memory() (*MemoryInfo, error) {
	return memoryInfo()
}

// Uptime returns how long the system has been running.
// Supported on Linux; other platforms report an unsupported error.
func Uptime() (time.Duration, error) {
	return uptime()
}

// NetworkInterfaces returns the host's network interfaces with their
// hardware and IP addresses.
func NetworkInterfaces() ([]InterfaceInfo, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	infos := make([]InterfaceInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		info := InterfaceInfo{
			Name: iface.Name,
			MAC:  iface.HardwareAddr.String(),
			Up:   iface.Flags&net.FlagUp != 0,
		}
		// Addresses are best-effort; an interface that cannot report
		// them is still listed.
		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				info.Addresses = append(info.Addresses, addr.String())
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
