// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import (
	"context"

	"github.com/matt-FFFFFF/deskctl/internal/pending"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/validate"
)

// darwinRouteTable prints the IPv4 routing table without resolving names.
const darwinRouteTable = "netstat -nr -f inet"

type darwinPlatform struct {
	*base
}

func (p *darwinPlatform) Supports(cmd platform.Command) bool {
	switch cmd {
	case platform.FileManage, platform.OpenBrowser, platform.MsgBox, platform.GetGateway:
		return true
	}

	return false
}

// FileManage opens args.Path in Finder.
func (p *darwinPlatform) FileManage(ctx context.Context, args validate.FileManageArgs) error {
	return p.launch(ctx, platform.FileManage, "open "+posixQuote(args.Path))
}

func (p *darwinPlatform) OpenBrowser(ctx context.Context, args validate.OpenBrowserArgs) error {
	return p.launch(ctx, platform.OpenBrowser, "open "+posixQuote(args.URL))
}

// MsgBox shows a dialog with a single OK button via osascript.
func (p *darwinPlatform) MsgBox(ctx context.Context, args validate.MsgBoxArgs) (*pending.Result[int], error) {
	commandLine := darwinMsgBoxCommandLine(args.Title, args.Content)

	ps, cancel, err := p.spawn(ctx, platform.MsgBox, commandLine)
	if err != nil {
		return nil, err
	}

	res := pending.New[int]()
	go awaitExit(ctx, platform.MsgBox, commandLine, ps, cancel, res, args.Callback)

	return res, nil
}

func (p *darwinPlatform) GetGateway(ctx context.Context, args validate.GatewayArgs) (*pending.Result[string], error) {
	ps, cancel, err := p.spawn(ctx, platform.GetGateway, darwinRouteTable)
	if err != nil {
		return nil, err
	}

	parse := func(table []byte) (string, error) {
		gw, ok := ParseDefaultGateway(table, args.Interface)
		if !ok {
			return "", &NotFoundError{
				Command: platform.GetGateway,
				What:    "default route for interface " + args.Interface,
			}
		}

		return gw, nil
	}

	res := pending.New[string]()
	go awaitOutput(ctx, platform.GetGateway, darwinRouteTable, ps, cancel, res, parse, args.Callback)

	return res, nil
}

func darwinMsgBoxCommandLine(title, content string) string {
	script := "display dialog " + appleScriptString(content) +
		" with title " + appleScriptString(title) +
		` buttons {"OK"} default button "OK"`

	return "osascript -e " + posixQuote(script)
}
