// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/deskctl/internal/pending"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/validate"
)

// mbIconInformation is the msgbox style for an OK button with the information icon.
const mbIconInformation = 64

type windowsPlatform struct {
	*base
}

func (p *windowsPlatform) Supports(cmd platform.Command) bool {
	switch cmd {
	case platform.FileManage, platform.OpenBrowser, platform.MsgBox:
		return true
	case platform.GetGateway:
	}

	return false
}

func (p *windowsPlatform) FileManage(ctx context.Context, args validate.FileManageArgs) error {
	return p.launch(ctx, platform.FileManage, "explorer "+cmdQuote(args.Path))
}

// OpenBrowser uses start, the empty first argument is the window title.
func (p *windowsPlatform) OpenBrowser(ctx context.Context, args validate.OpenBrowserArgs) error {
	return p.launch(ctx, platform.OpenBrowser, `start "" `+cmdQuote(args.URL))
}

func (p *windowsPlatform) MsgBox(ctx context.Context, args validate.MsgBoxArgs) (*pending.Result[int], error) {
	commandLine := windowsMsgBoxCommandLine(args.Title, args.Content)

	ps, cancel, err := p.spawn(ctx, platform.MsgBox, commandLine)
	if err != nil {
		return nil, err
	}

	res := pending.New[int]()
	go awaitExit(ctx, platform.MsgBox, commandLine, ps, cancel, res, args.Callback)

	return res, nil
}

func (p *windowsPlatform) GetGateway(context.Context, validate.GatewayArgs) (*pending.Result[string], error) {
	return nil, p.unsupported(platform.GetGateway)
}

func windowsMsgBoxCommandLine(title, content string) string {
	return fmt.Sprintf("mshta vbscript:msgbox(%s,%d,%s)(window.close)",
		vbScriptString(content), mbIconInformation, vbScriptString(title))
}
