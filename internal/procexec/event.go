// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package procexec

import "fmt"

// EventKind identifies what an Event carries.
type EventKind int

// Event kinds.
const (
	EventStdout EventKind = iota
	EventStderr
	EventExit
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventStdout:
		return "stdout"
	case EventStderr:
		return "stderr"
	case EventExit:
		return "exit"
	}

	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a chunk of output or the exit of a process.
type Event struct {
	Kind     EventKind
	Data     []byte // Output chunk, set for EventStdout and EventStderr.
	ExitCode int    // Exit code, set for EventExit. -1 if the process was killed.
}

// Stdout returns an EventStdout carrying s.
func Stdout(s string) Event {
	return Event{Kind: EventStdout, Data: []byte(s)}
}

// Stderr returns an EventStderr carrying s.
func Stderr(s string) Event {
	return Event{Kind: EventStderr, Data: []byte(s)}
}

// Exit returns an EventExit with the given code.
func Exit(code int) Event {
	return Event{Kind: EventExit, ExitCode: code}
}
