// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/deskctl/internal/pending"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/procexec"
	"github.com/matt-FFFFFF/deskctl/internal/validate"
)

// Platform implements the logical commands for one operating system.
type Platform interface {
	// OS returns the operating system this Platform was selected for.
	OS() platform.OS
	// Supports reports whether cmd has a variant on this Platform.
	Supports(cmd platform.Command) bool

	FileManage(ctx context.Context, args validate.FileManageArgs) error
	OpenBrowser(ctx context.Context, args validate.OpenBrowserArgs) error
	MsgBox(ctx context.Context, args validate.MsgBoxArgs) (*pending.Result[int], error)
	GetGateway(ctx context.Context, args validate.GatewayArgs) (*pending.Result[string], error)
}

// Option configures the Platform returned by New.
type Option func(b *base)

// WithTimeout bounds how long each spawned process may run. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(b *base) {
		b.timeout = d
	}
}

// New returns the Platform for id, running processes with executor.
func New(id platform.OS, executor procexec.Executor, opts ...Option) Platform {
	b := &base{os: id, exec: executor}
	for _, opt := range opts {
		opt(b)
	}

	switch id {
	case platform.Windows:
		return &windowsPlatform{base: b}
	case platform.Darwin:
		return &darwinPlatform{base: b}
	}

	return &unsupportedPlatform{base: b}
}

// SupportedOS returns the operating systems that have at least one variant.
func SupportedOS() []platform.OS {
	return []platform.OS{platform.Windows, platform.Darwin}
}

// Table reports, for each logical command, the operating systems that implement it.
func Table() map[platform.Command][]platform.OS {
	table := make(map[platform.Command][]platform.OS)

	for _, cmd := range platform.AllCommands() {
		table[cmd] = []platform.OS{}

		for _, id := range SupportedOS() {
			if New(id, nil).Supports(cmd) {
				table[cmd] = append(table[cmd], id)
			}
		}
	}

	return table
}

// base holds what every Platform shares. Platforms keep no other state.
type base struct {
	os      platform.OS
	exec    procexec.Executor
	timeout time.Duration
}

func (b *base) OS() platform.OS {
	return b.os
}

func (b *base) unsupported(cmd platform.Command) error {
	return &UnsupportedPlatformError{Command: cmd, OS: b.os}
}

// unsupportedPlatform is selected for operating systems without variants.
type unsupportedPlatform struct {
	*base
}

func (p *unsupportedPlatform) Supports(platform.Command) bool {
	return false
}

func (p *unsupportedPlatform) FileManage(context.Context, validate.FileManageArgs) error {
	return p.unsupported(platform.FileManage)
}

func (p *unsupportedPlatform) OpenBrowser(context.Context, validate.OpenBrowserArgs) error {
	return p.unsupported(platform.OpenBrowser)
}

func (p *unsupportedPlatform) MsgBox(context.Context, validate.MsgBoxArgs) (*pending.Result[int], error) {
	return nil, p.unsupported(platform.MsgBox)
}

func (p *unsupportedPlatform) GetGateway(context.Context, validate.GatewayArgs) (*pending.Result[string], error) {
	return nil, p.unsupported(platform.GetGateway)
}
