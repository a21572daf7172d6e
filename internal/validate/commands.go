// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"

	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/spf13/afero"
)

// FileManageArgs are the normalized arguments of fileManage.
type FileManageArgs struct {
	Path string
}

// OpenBrowserArgs are the normalized arguments of openBrowser.
type OpenBrowserArgs struct {
	URL string
}

// MsgBoxArgs are the normalized arguments of msgBox.
type MsgBoxArgs struct {
	Title    string
	Content  string
	Callback func(exitCode int) // Optional, called before the result resolves.
}

// GatewayArgs are the normalized arguments of getGateway.
type GatewayArgs struct {
	Interface string
	Callback  func(address string) // Optional, called before the result resolves.
}

// FileManage returns the fileManage validator: one path that must exist on fs.
func FileManage(fs afero.Fs) func(args ...any) (FileManageArgs, error) {
	return func(args ...any) (FileManageArgs, error) {
		if err := arity(platform.FileManage, args, 1, 1); err != nil {
			return FileManageArgs{}, err
		}

		path, ok := args[0].(string)
		if !ok || !IsFilePath(fs, path) {
			return FileManageArgs{}, NewArgumentError(platform.FileManage, "path", "%v non-existent", args[0])
		}

		return FileManageArgs{Path: path}, nil
	}
}

// OpenBrowser validates one http or https URL.
func OpenBrowser(args ...any) (OpenBrowserArgs, error) {
	if err := arity(platform.OpenBrowser, args, 1, 1); err != nil {
		return OpenBrowserArgs{}, err
	}

	raw, ok := args[0].(string)
	if !ok || !IsURL(raw) {
		return OpenBrowserArgs{}, NewArgumentError(platform.OpenBrowser, "url", "%v isn't correct url", args[0])
	}

	return OpenBrowserArgs{URL: raw}, nil
}

// MsgBox validates a title, a content and an optional func(int) callback.
// The title is checked before the content.
func MsgBox(args ...any) (MsgBoxArgs, error) {
	if err := arity(platform.MsgBox, args, 0, 3); err != nil {
		return MsgBoxArgs{}, err
	}

	title, content, cb := at(args, 0), at(args, 1), at(args, 2)

	if !IsString(title) {
		return MsgBoxArgs{}, NewArgumentError(platform.MsgBox, "title", "title isn't a string")
	}

	if !IsString(content) {
		return MsgBoxArgs{}, NewArgumentError(platform.MsgBox, "content", "content isn't a string")
	}

	out := MsgBoxArgs{Title: title.(string), Content: content.(string)}

	if cb != nil {
		fn, ok := cb.(func(int))
		if !ok {
			return MsgBoxArgs{}, NewArgumentError(platform.MsgBox, "callback", "callback must be a func(int), got %T", cb)
		}

		out.Callback = fn
	}

	return out, nil
}

// GetGateway validates a network interface name and an optional func(string) callback.
func GetGateway(args ...any) (GatewayArgs, error) {
	if err := arity(platform.GetGateway, args, 0, 2); err != nil {
		return GatewayArgs{}, err
	}

	name, cb := at(args, 0), at(args, 1)

	if !IsString(name) {
		got := "empty string"
		if _, ok := name.(string); !ok {
			got = typeName(name)
		}

		return GatewayArgs{}, NewArgumentError(platform.GetGateway, "interface",
			"interface name must be a non-empty string, got %s", got)
	}

	out := GatewayArgs{Interface: name.(string)}

	if cb != nil {
		fn, ok := cb.(func(string))
		if !ok {
			return GatewayArgs{}, NewArgumentError(platform.GetGateway, "callback", "callback must be a func(string), got %T", cb)
		}

		out.Callback = fn
	}

	return out, nil
}

func arity(cmd platform.Command, args []any, minArgs, maxArgs int) error {
	switch {
	case len(args) < minArgs:
		return NewArgumentError(cmd, "", "%s expects at least %d argument(s), got %d", cmd, minArgs, len(args))
	case len(args) > maxArgs:
		return NewArgumentError(cmd, "", "%s expects at most %d argument(s), got %d", cmd, maxArgs, len(args))
	}

	return nil
}

// at returns args[i], or nil when the argument was omitted.
func at(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}

	return nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", v)
}
