// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package procexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
)

const (
	goosWindows       = "windows"
	winSystem32       = "System32"
	cmdExe            = "cmd.exe"
	binSh             = "/bin/sh"
	commandSwitchUnix = "-c"
	winSystemRootEnv  = "SystemRoot"
)

var _ Executor = (*ShellExecutor)(nil)

// ShellExecutor runs command lines through the platform shell:
// cmd.exe on Windows, $SHELL (or /bin/sh) elsewhere.
type ShellExecutor struct {
	Shell string            // Overrides the detected shell when set.
	Env   map[string]string // Added to the inherited environment.
}

// NewShellExecutor returns a ShellExecutor using the platform shell.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{}
}

// Start implements Executor.
func (e *ShellExecutor) Start(ctx context.Context, commandLine string) (Process, error) {
	if commandLine == "" {
		return nil, ErrEmptyCommand
	}

	shell := e.Shell
	if shell == "" {
		shell = defaultShell(ctx)
	}

	logger := ctxlog.Logger(ctx).With("executor", "shell", "shell", shell)

	env := os.Environ()
	for k, v := range e.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	stdin, err := os.Open(os.DevNull)
	if err != nil {
		closeAll(rOut, wOut, rErr, wErr)
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("starting process", "commandLine", commandLine)

	ps, err := os.StartProcess(shell, shellArgs(shell, commandLine), &os.ProcAttr{
		Env:   env,
		Files: []*os.File{stdin, wOut, wErr},
		Sys:   sysProcAttr(shell, commandLine),
	})

	// The child holds its own copies of these.
	closeAll(stdin, wOut, wErr)

	if err != nil {
		closeAll(rOut, rErr)
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	p := &osProcess{
		events: make(chan Event, eventBuffer),
		pid:    ps.Pid,
	}

	go p.supervise(ctx, ps, rOut, rErr)

	return p, nil
}

type osProcess struct {
	events chan Event
	pid    int
	mu     sync.Mutex
	err    error
}

func (p *osProcess) Events() <-chan Event {
	return p.events
}

func (p *osProcess) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

func (p *osProcess) addErr(err error) {
	if err == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.err = errors.Join(p.err, err)
}

// supervise streams both pipes, waits for the process and emits the exit event.
// A watchdog kills the process when ctx is done.
func (p *osProcess) supervise(ctx context.Context, ps *os.Process, rOut, rErr *os.File) {
	defer close(p.events)

	logger := ctxlog.Logger(ctx).With("pid", p.pid)

	done := make(chan struct{})
	killed := make(chan error, 1)

	var watchdog sync.WaitGroup

	watchdog.Add(1)

	go func() {
		defer watchdog.Done()

		select {
		case <-ctx.Done():
			logger.Info("context done, killing process")
			killPs(ctx, ps)
			killed <- killReason(ctx)
		case <-done:
		}
	}()

	var pumps sync.WaitGroup

	pumps.Add(2)

	go p.pump(ctx, &pumps, rOut, EventStdout)
	go p.pump(ctx, &pumps, rErr, EventStderr)

	state, waitErr := ps.Wait()
	pumps.Wait()
	close(done)
	watchdog.Wait()

	exitCode := -1
	if state != nil {
		exitCode = state.ExitCode()
	}

	p.addErr(waitErr)

	select {
	case reason := <-killed:
		p.addErr(reason)
		exitCode = -1
	default:
	}

	logger.Debug("process finished", "exitCode", exitCode)

	p.events <- Event{Kind: EventExit, ExitCode: exitCode}
}

// pump forwards chunks read from r as events of the given kind.
// Output beyond maxBufferSize is discarded and recorded as ErrBufferOverflow.
func (p *osProcess) pump(ctx context.Context, wg *sync.WaitGroup, r *os.File, kind EventKind) {
	defer wg.Done()
	defer r.Close() //nolint:errcheck

	buf := make([]byte, readChunkSize)
	total := 0

	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += n
			if total > maxBufferSize {
				ctxlog.Debug(ctx, "stream overflow, discarding output", "stream", kind.String(), "maxBytes", maxBufferSize)
				p.addErr(ErrBufferOverflow)
				_, _ = io.Copy(io.Discard, r)

				return
			}

			p.events <- Event{Kind: kind, Data: bytes.Clone(buf[:n])}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.addErr(errors.Join(ErrFailedToReadBuffer, err))
			}

			return
		}
	}
}

func killPs(ctx context.Context, ps *os.Process) {
	if err := killTree(ps); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Info(ctx, "process killed", "pid", ps.Pid)
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// defaultShell returns the shell used when ShellExecutor.Shell is empty.
func defaultShell(ctx context.Context) string {
	if runtime.GOOS == goosWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return filepath.Join(systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}
