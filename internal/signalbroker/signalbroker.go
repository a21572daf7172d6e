// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker turns operating system termination signals into context cancellation.
//
// A dialog or route lookup in flight should not be torn down by a stray Ctrl+C, so the
// first signal of a kind is only logged. The second signal of the same kind cancels.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New subscribes to sigs, or to the termination signals when none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	if len(sigs) == 0 {
		sigs = termSignals
	}

	ch := make(chan os.Signal, 1)

	ctxlog.Debug(ctx, "subscribing to signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch reads sigCh until it is closed, ctx is done, or the same signal arrives twice.
// On the second signal it stops delivery to sigCh and calls cancel.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Warn(ctx, "second signal received, cancelling", "signal", sig.String())
				signal.Stop(sigCh)
				cancel()

				return
			}

			seen[sig] = struct{}{}

			ctxlog.Warn(ctx, "signal received, send again to cancel", "signal", sig.String())
		}
	}
}
