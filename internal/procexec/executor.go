// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package procexec

import (
	"context"
	"errors"
	"fmt"
)

const (
	maxBufferSize = 8 * 1024 * 1024 // 8MB per stream
	readChunkSize = 32 * 1024
	eventBuffer   = 64
)

var (
	// ErrEmptyCommand is returned when Start is called with an empty command line.
	ErrEmptyCommand = errors.New("empty command line")
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when an operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when reading from a process pipe fails.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrBufferOverflow is returned when a stream exceeds the maximum size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
	// ErrTimeoutExceeded is returned when the process was killed because its context deadline passed.
	ErrTimeoutExceeded = errors.New("timeout exceeded")
	// ErrProcessKilled is returned when the process was killed because its context was cancelled.
	ErrProcessKilled = errors.New("process killed")
)

// Executor starts command lines as child processes.
type Executor interface {
	// Start launches commandLine and returns without waiting for it to finish.
	// Cancelling ctx kills the process.
	Start(ctx context.Context, commandLine string) (Process, error)
}

// Process is a running child process.
type Process interface {
	// Events streams output and, last, the exit of the process.
	Events() <-chan Event
	// Err reports why the process ended abnormally. It is valid once EventExit has been received.
	Err() error
}

func killReason(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Join(ErrTimeoutExceeded, ctx.Err())
	}

	return errors.Join(ErrProcessKilled, ctx.Err())
}
