// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !unix && !windows

package procexec

import (
	"os"
	"path/filepath"
	"syscall"
)

func shellArgs(shell, commandLine string) []string {
	return []string{filepath.Base(shell), commandSwitchUnix, commandLine}
}

func sysProcAttr(_, _ string) *syscall.SysProcAttr {
	return nil
}

func killTree(ps *os.Process) error {
	return ps.Kill()
}
