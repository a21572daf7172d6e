// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package invoke contains one subcommand per logical desktop command.
package invoke

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/deskctl/cmd/deskctl/setup"
	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	pathArg    = "path"
	urlArg     = "url"
	titleArg   = "title"
	contentArg = "content"
	ifaceArg   = "interface"
)

// ErrInvoke is returned when a desktop command fails.
var ErrInvoke = errors.New("command failed")

// Commands returns a new instance of every invoke subcommand.
func Commands() []*cli.Command {
	return []*cli.Command{
		fileManageCmd(),
		openBrowserCmd(),
		msgBoxCmd(),
		gatewayCmd(),
	}
}

// fileManageCmd builds the command that opens the file manager at a path.
func fileManageCmd() *cli.Command {
	return &cli.Command{
		Name:      "file-manage",
		Aliases:   []string{"fm"},
		Usage:     "Open the file manager at PATH",
		ArgsUsage: "PATH",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: pathArg, Config: cli.StringConfig{TrimSpace: true}},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := setup.Registry(ctx)
			if err != nil {
				return err
			}

			if err := r.FileManage(ctx, cmd.StringArg(pathArg)); err != nil {
				return errors.Join(ErrInvoke, err)
			}

			ctxlog.Info(ctx, "file manager opened", "path", cmd.StringArg(pathArg))

			return nil
		},
	}
}

// openBrowserCmd builds the command that opens a URL in the default browser.
func openBrowserCmd() *cli.Command {
	return &cli.Command{
		Name:      "open-browser",
		Aliases:   []string{"ob"},
		Usage:     "Open URL in the default browser",
		ArgsUsage: "URL",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: urlArg, Config: cli.StringConfig{TrimSpace: true}},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := setup.Registry(ctx)
			if err != nil {
				return err
			}

			if err := r.OpenBrowser(ctx, cmd.StringArg(urlArg)); err != nil {
				return errors.Join(ErrInvoke, err)
			}

			ctxlog.Info(ctx, "browser opened", "url", cmd.StringArg(urlArg))

			return nil
		},
	}
}

// msgBoxCmd builds the command that shows a message box and prints the exit code once it is dismissed.
func msgBoxCmd() *cli.Command {
	return &cli.Command{
		Name:      "msg-box",
		Aliases:   []string{"mb"},
		Usage:     "Show a message box and wait for it to be dismissed",
		ArgsUsage: "TITLE CONTENT",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: titleArg},
			&cli.StringArg{Name: contentArg},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := setup.Registry(ctx)
			if err != nil {
				return err
			}

			res, err := r.MsgBox(ctx, cmd.StringArg(titleArg), cmd.StringArg(contentArg), nil)
			if err != nil {
				return errors.Join(ErrInvoke, err)
			}

			code, err := res.Wait(ctx)
			if err != nil {
				return errors.Join(ErrInvoke, err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, code)

			return err
		},
	}
}

// gatewayCmd builds the command that prints the default IPv4 gateway of a network interface.
func gatewayCmd() *cli.Command {
	return &cli.Command{
		Name:      "gateway",
		Aliases:   []string{"gw"},
		Usage:     "Print the default IPv4 gateway of INTERFACE",
		ArgsUsage: "INTERFACE",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: ifaceArg, Config: cli.StringConfig{TrimSpace: true}},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := setup.Registry(ctx)
			if err != nil {
				return err
			}

			res, err := r.GetGateway(ctx, cmd.StringArg(ifaceArg), nil)
			if err != nil {
				return errors.Join(ErrInvoke, err)
			}

			gw, err := res.Wait(ctx)
			if err != nil {
				return errors.Join(ErrInvoke, err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, gw)

			return err
		},
	}
}
