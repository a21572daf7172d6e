// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package procexectest provides a scripted procexec.Executor for tests.
package procexectest

import (
	"context"
	"slices"
	"sync"

	"github.com/matt-FFFFFF/deskctl/internal/procexec"
)

var _ procexec.Executor = (*Recorder)(nil)

// Recorder records every command line it is asked to start and replays scripted events.
type Recorder struct {
	// Script returns the events for a command line. An exit event is appended when missing.
	// A nil Script replays a single exit with code 0.
	Script func(commandLine string) []procexec.Event
	// StartErr, when set, is returned by Start instead of a process.
	StartErr error
	// Hang makes processes emit nothing until their context is done.
	Hang bool
	// ProcessErr is reported by Process.Err of every replayed process.
	ProcessErr error

	mu    sync.Mutex
	calls []string
}

// Start implements procexec.Executor.
func (r *Recorder) Start(ctx context.Context, commandLine string) (procexec.Process, error) {
	r.mu.Lock()
	r.calls = append(r.calls, commandLine)
	r.mu.Unlock()

	if r.StartErr != nil {
		return nil, r.StartErr
	}

	p := &process{events: make(chan procexec.Event)}

	if r.Hang {
		go p.hang(ctx)
		return p, nil
	}

	events := []procexec.Event{procexec.Exit(0)}
	if r.Script != nil {
		events = r.Script(commandLine)
	}

	if len(events) == 0 || events[len(events)-1].Kind != procexec.EventExit {
		events = append(events, procexec.Exit(0))
	}

	p.err = r.ProcessErr

	go p.replay(events)

	return p, nil
}

// Calls returns the command lines started so far.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.calls)
}

// Count returns the number of command lines started so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// Lines returns a Script that writes out to stdout and exits with code.
func Lines(out string, code int) func(string) []procexec.Event {
	return func(string) []procexec.Event {
		return []procexec.Event{procexec.Stdout(out), procexec.Exit(code)}
	}
}

type process struct {
	events chan procexec.Event
	err    error
}

func (p *process) Events() <-chan procexec.Event {
	return p.events
}

// Err is written before the exit event is sent, so reading it after receiving
// the exit event is race free.
func (p *process) Err() error {
	return p.err
}

func (p *process) replay(events []procexec.Event) {
	defer close(p.events)

	for _, ev := range events {
		p.events <- ev

		if ev.Kind == procexec.EventExit {
			return
		}
	}
}

func (p *process) hang(ctx context.Context) {
	defer close(p.events)

	<-ctx.Done()
	p.err = ctx.Err()
	p.events <- procexec.Exit(-1)
}
