// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the deskctl command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/deskctl"
	"github.com/matt-FFFFFF/deskctl/cmd/deskctl/invoke"
	"github.com/matt-FFFFFF/deskctl/cmd/deskctl/list"
	"github.com/matt-FFFFFF/deskctl/cmd/deskctl/setup"
	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
	"github.com/matt-FFFFFF/deskctl/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands:  append(invoke.Commands(), list.ListCmd),
	Flags:     setup.Flags(),
	Before:    setup.Before,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "deskctl",
	Description: `deskctl runs desktop actions the same way on every supported operating system.
It opens the file manager or the default browser, shows message boxes and
looks up the default gateway of a network interface, using the native tools
of Windows or macOS.`,
	Usage:     "deskctl open-browser https://example.com",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", deskctl.Version, deskctl.Commit)

	err := rootCmd.Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}
}
