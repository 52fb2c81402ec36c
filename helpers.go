// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package helpers is the aggregated export surface of the toolbelt.
package helpers

import (
	"time"

	"github.com/dylarcher/helper-utils-sub001/config"
	"github.com/dylarcher/helper-utils-sub001/host"
	"github.com/dylarcher/helper-utils-sub001/web"
)

// =============================================================================
// WEB CATALOG
// =============================================================================

// Re-exported web types.
type (
	Storage         = web.Storage
	Dispatcher      = web.Dispatcher
	Event           = web.Event
	Handler         = web.Handler
	ListenerOptions = web.ListenerOptions
	Client          = web.Client
	ClientConfig    = web.ClientConfig
	StatusError     = web.StatusError
)

// Re-exported web functions.
var (
	AddClass            = web.AddClass
	RemoveClass         = web.RemoveClass
	ToggleClass         = web.ToggleClass
	HasClass            = web.HasClass
	GetAttribute        = web.GetAttribute
	SetAttribute        = web.SetAttribute
	SetStyle            = web.SetStyle
	Hide                = web.Hide
	RemoveNode          = web.RemoveNode
	CreateElement       = web.CreateElement
	QuerySelector       = web.QuerySelector
	QuerySelectorAll    = web.QuerySelectorAll
	Closest             = web.Closest
	Matches             = web.Matches
	ParseQueryParams    = web.ParseQueryParams
	GetCookie           = web.GetCookie
	OpenStorage         = web.OpenStorage
	NewDispatcher       = web.NewDispatcher
	NewClient           = web.NewClient
	NewClientWithConfig = web.NewClientWithConfig
	DefaultClientConfig = web.DefaultClientConfig
	WriteClipboard      = web.WriteClipboard
	ReadClipboard       = web.ReadClipboard
)

// Debounce re-exports web.Debounce.
// (Generic functions cannot be aliased through a var.)
func Debounce[T any](delay time.Duration, fn func(T)) func(T) {
	return web.Debounce(delay, fn)
}

// Throttle re-exports web.Throttle.
func Throttle[T any](limit time.Duration, fn func(T)) func(T) {
	return web.Throttle(limit, fn)
}

// =============================================================================
// HOST CATALOG
// =============================================================================

// Re-exported host types.
type (
	CommandResult = host.CommandResult
	CPUInfo       = host.CPUInfo
	MemoryInfo    = host.MemoryInfo
	InterfaceInfo = host.InterfaceInfo
)

// Re-exported host functions. NewUUID resolves the collision between
// the two catalogs' generators: the host version wins.
var (
	CreateDir         = host.CreateDir
	RemoveDir         = host.RemoveDir
	ListDir           = host.ListDir
	FileExists        = host.FileExists
	IsDirectory       = host.IsDirectory
	ReadFileText      = host.ReadFileText
	WriteFileText     = host.WriteFileText
	AtomicWriteFile   = host.AtomicWriteFile
	JoinPath          = host.JoinPath
	ResolvePath       = host.ResolvePath
	Basename          = host.Basename
	Dirname           = host.Dirname
	Extname           = host.Extname
	RunCommand        = host.RunCommand
	RunShell          = host.RunShell
	Env               = host.Env
	EnvDefault        = host.EnvDefault
	Hostname          = host.Hostname
	Platform          = host.Platform
	CPUs              = host.CPUs
	Memory            = host.Memory
	Uptime            = host.Uptime
	NetworkInterfaces = host.NetworkInterfaces
	IsTerminal        = host.IsTerminal
	IsInteractive     = host.IsInteractive
	Hash              = host.Hash
	Encrypt           = host.Encrypt
	Decrypt           = host.Decrypt
	DeriveKey         = host.DeriveKey
	GenerateSalt      = host.GenerateSalt
	RandomBytes       = host.RandomBytes
	ZeroBytes         = host.ZeroBytes
	NewUUID           = host.NewUUID
	WatchPath         = host.WatchPath
)

// =============================================================================
// CONFIGURED CONSTRUCTORS
// =============================================================================

// OpenConfiguredStorage opens the persistent store at the path the
// configuration names. A nil cfg uses the defaults.
func OpenConfiguredStorage(cfg *config.Config) (*web.Storage, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	return web.OpenStorage(cfg.Storage.Path)
}

// NewConfiguredClient builds a fetch client from the configuration.
// A nil cfg uses the defaults.
func NewConfiguredClient(cfg *config.Config) *web.Client {
	if cfg == nil {
		cfg = config.Default()
	}
	return web.NewClientWithConfig(&web.ClientConfig{
		Timeout:   time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		UserAgent: cfg.Fetch.UserAgent,
	})
}
