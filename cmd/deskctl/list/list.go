// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list renders the command support matrix.
package list

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/matt-FFFFFF/deskctl/cmd/deskctl/setup"
	"github.com/matt-FFFFFF/deskctl/internal/config"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/variants"
	"github.com/urfave/cli/v3"
)

const (
	supportedMark   = "yes"
	unsupportedMark = "-"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// ListCmd prints which commands are implemented on which operating system.
var ListCmd = &cli.Command{
	Name:  "list",
	Usage: "Show which commands are supported on which operating system",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		r, err := setup.Registry(ctx)
		if err != nil {
			return err
		}

		cfg, err := setup.Config(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.Root().Writer, "%s\n%s\n", Render(r.OS(), r.Supported), Source(cfg))

		return err
	},
}

// Render returns the support matrix as a table. The last column is the
// selected operating system, with supported reporting each command there.
func Render(selected platform.OS, supported func(platform.Command) bool) string {
	matrix := variants.Table()

	headers := []string{"command"}
	for _, id := range variants.SupportedOS() {
		headers = append(headers, id.String())
	}

	headers = append(headers, fmt.Sprintf("selected (%s)", selected))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, cmd := range platform.AllCommands() {
		row := []string{cmd.String()}
		for _, id := range variants.SupportedOS() {
			row = append(row, mark(slices.Contains(matrix[cmd], id)))
		}

		row = append(row, mark(supported(cmd)))
		t.Row(row...)
	}

	return t.Render()
}

// Source describes where the settings in cfg came from.
func Source(cfg *config.Config) string {
	if cfg.File == "" {
		return "configuration: defaults and environment"
	}

	return "configuration file: " + cfg.File
}

func mark(ok bool) string {
	if ok {
		return supportedMark
	}

	return unsupportedMark
}
