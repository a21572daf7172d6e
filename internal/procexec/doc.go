// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package procexec runs shell command lines as child processes and streams their
// output as events.
//
// A Process delivers zero or more EventStdout and EventStderr events followed by
// exactly one EventExit, after which the channel is closed. Consumers must drain
// the channel until it is closed.
package procexec
