// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/deskctl/internal/platform"
)

var (
	// ErrUnsupportedPlatform matches every *UnsupportedPlatformError via errors.Is.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrExternalProcess matches every *ExternalProcessError via errors.Is.
	ErrExternalProcess = errors.New("external process failed")
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
)

// UnsupportedPlatformError is returned when a command has no variant for the operating system.
type UnsupportedPlatformError struct {
	Command platform.Command
	OS      platform.OS
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s is not supported on %s", e.Command, e.OS)
}

// Is reports whether target is ErrUnsupportedPlatform.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// ExternalProcessError is returned when a spawned process could not be started,
// wrote to its error stream, or was killed.
type ExternalProcessError struct {
	Command     platform.Command
	CommandLine string
	Stderr      string // First chunk written to the error stream, if any.
	Err         error  // Start or supervision failure, if any.
}

// Error implements the error interface.
func (e *ExternalProcessError) Error() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%s: process %q", e.Command, e.CommandLine)

	if e.Stderr != "" {
		fmt.Fprintf(&sb, " wrote to stderr: %s", strings.TrimSpace(e.Stderr))
	}

	if e.Err != nil {
		fmt.Fprintf(&sb, " failed: %v", e.Err)
	}

	return sb.String()
}

// Is reports whether target is ErrExternalProcess.
func (e *ExternalProcessError) Is(target error) bool {
	return target == ErrExternalProcess
}

// Unwrap returns the underlying start or supervision error.
func (e *ExternalProcessError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when the data a command looks for is absent from the process output.
type NotFoundError struct {
	Command platform.Command
	What    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s not found", e.Command, e.What)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
