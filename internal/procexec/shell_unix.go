// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package procexec

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
)

func shellArgs(shell, commandLine string) []string {
	return []string{filepath.Base(shell), commandSwitchUnix, commandLine}
}

// sysProcAttr puts the shell in its own process group so killTree reaches
// anything it forked.
func sysProcAttr(_, _ string) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

func killTree(ps *os.Process) error {
	if err := syscall.Kill(-ps.Pid, syscall.SIGKILL); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}

		return ps.Kill()
	}

	return nil
}
