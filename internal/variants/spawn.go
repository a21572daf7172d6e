// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import (
	"bytes"
	"context"

	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
	"github.com/matt-FFFFFF/deskctl/internal/pending"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/procexec"
)

// spawn starts commandLine, applying the configured timeout.
// The returned cancel func must be called once the process has exited.
func (b *base) spawn(
	ctx context.Context, cmd platform.Command, commandLine string,
) (procexec.Process, context.CancelFunc, error) {
	cancel := context.CancelFunc(func() {})
	if b.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
	}

	ctxlog.Debug(ctx, "spawning variant process", "command", cmd, "os", b.os, "commandLine", commandLine)

	ps, err := b.exec.Start(ctx, commandLine)
	if err != nil {
		cancel()
		return nil, nil, &ExternalProcessError{Command: cmd, CommandLine: commandLine, Err: err}
	}

	return ps, cancel, nil
}

// launch starts commandLine without waiting for it. The process is drained in the
// background and anything it writes to stderr is logged. Cancelling ctx after
// launch returns does not kill the process, the timeout still does.
func (b *base) launch(ctx context.Context, cmd platform.Command, commandLine string) error {
	if err := ctx.Err(); err != nil {
		return &ExternalProcessError{Command: cmd, CommandLine: commandLine, Err: err}
	}

	ctx = context.WithoutCancel(ctx)

	ps, cancel, err := b.spawn(ctx, cmd, commandLine)
	if err != nil {
		return err
	}

	go func() {
		defer cancel()

		var stderr bytes.Buffer

		for ev := range ps.Events() {
			switch ev.Kind {
			case procexec.EventStderr:
				stderr.Write(ev.Data)
			case procexec.EventExit:
				if stderr.Len() > 0 || ps.Err() != nil {
					ctxlog.Warn(ctx, "launched process reported a failure",
						"error", &ExternalProcessError{
							Command: cmd, CommandLine: commandLine, Stderr: stderr.String(), Err: ps.Err(),
						},
						"exitCode", ev.ExitCode)

					continue
				}

				ctxlog.Debug(ctx, "launched process exited", "command", cmd, "exitCode", ev.ExitCode)
			case procexec.EventStdout:
			}
		}
	}()

	return nil
}

// awaitExit settles res with the exit code of ps. The first stderr chunk rejects res.
// onExit, when set, is called with the exit code just before res resolves.
func awaitExit(
	ctx context.Context, cmd platform.Command, commandLine string,
	ps procexec.Process, cancel context.CancelFunc,
	res *pending.Result[int], onExit func(int),
) {
	defer cancel()

	for ev := range ps.Events() {
		switch ev.Kind {
		case procexec.EventStderr:
			res.Reject(&ExternalProcessError{Command: cmd, CommandLine: commandLine, Stderr: string(ev.Data)})
		case procexec.EventExit:
			if err := ps.Err(); err != nil {
				res.Reject(&ExternalProcessError{Command: cmd, CommandLine: commandLine, Err: err})
			}

			if res.Settled() {
				continue
			}

			ctxlog.Debug(ctx, "variant process exited", "command", cmd, "exitCode", ev.ExitCode)

			if onExit != nil {
				onExit(ev.ExitCode)
			}

			res.Resolve(ev.ExitCode)
		case procexec.EventStdout:
		}
	}
}

// awaitOutput collects the stdout of ps and settles res with parse(stdout) on exit.
// The first stderr chunk rejects res. onValue, when set, is called just before res resolves.
func awaitOutput[T any](
	ctx context.Context, cmd platform.Command, commandLine string,
	ps procexec.Process, cancel context.CancelFunc,
	res *pending.Result[T], parse func([]byte) (T, error), onValue func(T),
) {
	defer cancel()

	var stdout bytes.Buffer

	for ev := range ps.Events() {
		switch ev.Kind {
		case procexec.EventStdout:
			stdout.Write(ev.Data)
		case procexec.EventStderr:
			res.Reject(&ExternalProcessError{Command: cmd, CommandLine: commandLine, Stderr: string(ev.Data)})
		case procexec.EventExit:
			if err := ps.Err(); err != nil {
				res.Reject(&ExternalProcessError{Command: cmd, CommandLine: commandLine, Err: err})
			}

			if res.Settled() {
				continue
			}

			v, err := parse(stdout.Bytes())
			if err != nil {
				res.Reject(err)
				continue
			}

			ctxlog.Debug(ctx, "variant process produced a value", "command", cmd, "value", v)

			if onValue != nil {
				onValue(v)
			}

			res.Resolve(v)
		}
	}
}
