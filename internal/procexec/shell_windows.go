// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package procexec

import (
	"os"
	"path/filepath"
	"syscall"
)

func shellArgs(shell, commandLine string) []string {
	return []string{filepath.Base(shell), "/S", "/C", commandLine}
}

// sysProcAttr passes the command line to cmd.exe verbatim. The default argument
// escaping would backslash-escape the quotes that cmd.exe and mshta rely on.
func sysProcAttr(shell, commandLine string) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CmdLine: `"` + shell + `" /S /C "` + commandLine + `"`,
	}
}

func killTree(ps *os.Process) error {
	return ps.Kill()
}
