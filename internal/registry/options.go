// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"time"

	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/procexec"
	"github.com/matt-FFFFFF/deskctl/internal/variants"
	"github.com/spf13/afero"
)

// Option configures a Registry.
type Option func(o *options)

type options struct {
	os       platform.OS
	exec     procexec.Executor
	fs       afero.Fs
	timeout  time.Duration
	platform variants.Platform
}

// WithOS selects the variants for id instead of the host operating system.
func WithOS(id platform.OS) Option {
	return func(o *options) {
		o.os = id
	}
}

// WithExecutor sets the executor used to spawn external processes.
func WithExecutor(exec procexec.Executor) Option {
	return func(o *options) {
		o.exec = exec
	}
}

// WithFs sets the filesystem path arguments are checked against.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithTimeout kills processes that run for longer than d.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithPlatform replaces the variants entirely. WithOS, WithExecutor and WithTimeout are ignored.
func WithPlatform(p variants.Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

func (o *options) resolve() variants.Platform {
	if o.platform != nil {
		return o.platform
	}

	if o.os == platform.Unknown {
		o.os = platform.Detect()
	}

	if o.exec == nil {
		o.exec = procexec.NewShellExecutor()
	}

	return variants.New(o.os, o.exec, variants.WithTimeout(o.timeout))
}
