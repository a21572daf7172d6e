// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/deskctl/internal/platform"
)

// ErrArgument matches every *ArgumentError via errors.Is.
var ErrArgument = errors.New("invalid argument")

// ArgumentError is returned when a validator rejects its input.
type ArgumentError struct {
	Command platform.Command // The command whose arguments were rejected.
	Field   string           // The offending argument, e.g. "title".
	msg     string
}

// NewArgumentError creates an ArgumentError with a formatted message.
func NewArgumentError(cmd platform.Command, field, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Command: cmd,
		Field:   field,
		msg:     fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return e.msg
}

// Is reports whether target is ErrArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}
