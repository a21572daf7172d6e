// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnknownOS is returned when an operating system name cannot be parsed.
var ErrUnknownOS = errors.New("unknown operating system")

// OS is an operating system identifier, using the runtime.GOOS spelling.
type OS string

// Known operating system identifiers.
const (
	Unknown OS = ""
	Windows OS = "windows"
	Darwin  OS = "darwin"
	Linux   OS = "linux"
	FreeBSD OS = "freebsd"
	OpenBSD OS = "openbsd"
	NetBSD  OS = "netbsd"
	AIX     OS = "aix"
	Solaris OS = "solaris"
)

var known = map[string]OS{
	"windows": Windows,
	"win32":   Windows,
	"darwin":  Darwin,
	"macos":   Darwin,
	"osx":     Darwin,
	"linux":   Linux,
	"freebsd": FreeBSD,
	"openbsd": OpenBSD,
	"netbsd":  NetBSD,
	"aix":     AIX,
	"solaris": Solaris,
	"sunos":   Solaris,
}

// String implements fmt.Stringer.
func (o OS) String() string {
	if o == Unknown {
		return "unknown"
	}

	return string(o)
}

// Parse converts a name such as "windows", "win32" or "macOS" into an OS.
func Parse(s string) (OS, error) {
	if os, ok := known[strings.ToLower(strings.TrimSpace(s))]; ok {
		return os, nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownOS, s)
}

// Detect returns the identifier of the host operating system.
// An operating system that Parse does not know is returned verbatim.
func Detect() OS {
	return detect(runtime.GOOS)
}

func detect(goos string) OS {
	if os, err := Parse(goos); err == nil {
		return os
	}

	return OS(goos)
}

// Command is the name of a logical command exposed by the registry.
type Command string

// Logical commands.
const (
	FileManage  Command = "fileManage"
	OpenBrowser Command = "openBrowser"
	MsgBox      Command = "msgBox"
	GetGateway  Command = "getGateway"
)

// AllCommands returns every logical command in a stable order.
func AllCommands() []Command {
	return []Command{FileManage, OpenBrowser, MsgBox, GetGateway}
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return string(c)
}
