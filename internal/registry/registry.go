// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry binds every logical command to a validator and the variant
// for one operating system.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
	"github.com/matt-FFFFFF/deskctl/internal/pending"
	"github.com/matt-FFFFFF/deskctl/internal/pipeline"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/validate"
	"github.com/matt-FFFFFF/deskctl/internal/variants"
	"github.com/spf13/afero"
)

var (
	// ErrUnknownCommand is returned by Invoke for names that are not registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnexpectedResult is returned by the typed helpers if a command yields a result of the wrong type.
	ErrUnexpectedResult = errors.New("unexpected command result")
)

// Registry maps logical command names to composed commands.
// It is not modified after New and is safe for concurrent use.
type Registry struct {
	os       platform.OS
	commands map[platform.Command]pipeline.Command[any]
	support  map[platform.Command]bool
}

// New builds a Registry for the configured operating system, the host's by default.
func New(opts ...Option) *Registry {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}

	p := o.resolve()

	r := &Registry{
		os:       p.OS(),
		commands: make(map[platform.Command]pipeline.Command[any], len(platform.AllCommands())),
		support:  make(map[platform.Command]bool, len(platform.AllCommands())),
	}

	for cmd, composed := range compose(p, o.fs) {
		r.support[cmd] = p.Supports(cmd)

		if !r.support[cmd] {
			composed = pipeline.Fail[any](&variants.UnsupportedPlatformError{Command: cmd, OS: p.OS()})
		}

		r.commands[cmd] = composed
	}

	return r
}

// compose returns the validator and variant pipeline of every logical command.
func compose(p variants.Platform, fs afero.Fs) map[platform.Command]pipeline.Command[any] {
	return map[platform.Command]pipeline.Command[any]{
		platform.FileManage: pipeline.Chain(func(ctx context.Context, args validate.FileManageArgs) (any, error) {
			return nil, p.FileManage(ctx, args)
		}, validate.FileManage(fs)),
		platform.OpenBrowser: pipeline.Chain(func(ctx context.Context, args validate.OpenBrowserArgs) (any, error) {
			return nil, p.OpenBrowser(ctx, args)
		}, validate.OpenBrowser),
		platform.MsgBox:     pipeline.Erase(pipeline.Chain(p.MsgBox, validate.MsgBox)),
		platform.GetGateway: pipeline.Erase(pipeline.Chain(p.GetGateway, validate.GetGateway)),
	}
}

// OS returns the operating system whose variants are installed.
func (r *Registry) OS() platform.OS {
	return r.os
}

// Names returns every registered command name in a stable order.
func (r *Registry) Names() []platform.Command {
	names := make([]platform.Command, 0, len(r.commands))
	for _, cmd := range platform.AllCommands() {
		if _, ok := r.commands[cmd]; ok {
			names = append(names, cmd)
		}
	}

	return slices.Clip(names)
}

// Supported reports whether name has a variant for the registry's operating system.
func (r *Registry) Supported(name platform.Command) bool {
	return r.support[name]
}

// Invoke runs the command called name with raw arguments.
// Immediate commands yield a nil result, pending commands a *pending.Result.
func (r *Registry) Invoke(ctx context.Context, name string, args ...any) (any, error) {
	cmd := platform.Command(name)

	composed, ok := r.commands[cmd]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	ctx = ctxlog.With(ctx, "invocation", uuid.NewString(), "command", name, "os", r.os)
	ctxlog.Debug(ctx, "invoking command", "args", len(args))

	res, err := composed(ctx, args...)
	if err != nil {
		ctxlog.Debug(ctx, "command failed", "error", err)
		return nil, err
	}

	return res, nil
}

// FileManage opens a file manager at path.
func (r *Registry) FileManage(ctx context.Context, path string) error {
	_, err := r.Invoke(ctx, platform.FileManage.String(), path)
	return err
}

// OpenBrowser opens url in the default browser.
func (r *Registry) OpenBrowser(ctx context.Context, url string) error {
	_, err := r.Invoke(ctx, platform.OpenBrowser.String(), url)
	return err
}

// MsgBox shows a message box. The result resolves with the exit code once it is dismissed.
// cb may be nil.
func (r *Registry) MsgBox(ctx context.Context, title, content string, cb func(int)) (*pending.Result[int], error) {
	return invokeTyped[*pending.Result[int]](ctx, r, platform.MsgBox, title, content, cb)
}

// GetGateway resolves the default IPv4 gateway of iface. cb may be nil.
func (r *Registry) GetGateway(ctx context.Context, iface string, cb func(string)) (*pending.Result[string], error) {
	return invokeTyped[*pending.Result[string]](ctx, r, platform.GetGateway, iface, cb)
}

func invokeTyped[R any](ctx context.Context, r *Registry, cmd platform.Command, args ...any) (R, error) {
	var zero R

	res, err := r.Invoke(ctx, cmd.String(), args...)
	if err != nil {
		return zero, err
	}

	typed, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T", ErrUnexpectedResult, cmd, res)
	}

	return typed, nil
}
