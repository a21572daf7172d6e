// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package setup turns the global flags and the configuration file into the
// logger and command registry that every subcommand runs with.
package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/deskctl/internal/config"
	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
	"github.com/matt-FFFFFF/deskctl/internal/registry"
	"github.com/urfave/cli/v3"
)

// Global flag names.
const (
	ConfigFlag    = "config"
	OSFlag        = "os"
	TimeoutFlag   = "timeout"
	LogLevelFlag  = "log-level"
	LogFormatFlag = "log-format"
)

var (
	// ErrNoRegistry is returned when a subcommand runs without Before having been called.
	ErrNoRegistry = errors.New("command registry not initialised")
	// ErrSetup is returned when the configuration or logger cannot be set up.
	ErrSetup = errors.New("failed to set up deskctl")
)

type registryKey struct{}

type configKey struct{}

// Flags returns new instances of the global flags. They take precedence over the
// environment and the configuration file.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      ConfigFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to a deskctl.yaml or deskctl.hcl file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  OSFlag,
			Usage: "Use the variants of this operating system instead of the host's",
		},
		&cli.DurationFlag{
			Name:  TimeoutFlag,
			Usage: "Kill spawned processes that run for longer than this, 0 disables",
		},
		&cli.StringFlag{
			Name:  LogLevelFlag,
			Usage: "One of debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  LogFormatFlag,
			Usage: "One of pretty or json",
		},
	}
}

// NewRegistry builds the registry for cfg.
var NewRegistry = func(cfg *config.Config) (*registry.Registry, error) {
	id, err := cfg.Platform()
	if err != nil {
		return nil, err
	}

	return registry.New(registry.WithOS(id), registry.WithTimeout(cfg.Timeout)), nil
}

// Before loads the configuration, applies the global flags and stores the
// resulting logger and registry in the returned context.
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(ctx, cmd.String(ConfigFlag))
	if err != nil {
		return ctx, errors.Join(ErrSetup, err)
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return ctx, errors.Join(ErrSetup, err)
	}

	if level, ok := cfg.Level(); ok {
		ctxlog.LevelVar.Set(level)
	}

	logger, err := ctxlog.NewLogger(cfg.LogFormat, cmd.Root().ErrWriter)
	if err != nil {
		return ctx, errors.Join(ErrSetup, err)
	}

	ctx = ctxlog.New(ctx, logger)

	r, err := NewRegistry(cfg)
	if err != nil {
		return ctx, errors.Join(ErrSetup, err)
	}

	ctxlog.Debug(ctx, "deskctl ready", "os", r.OS(), "timeout", cfg.Timeout, "config", cfg.File)

	ctx = context.WithValue(ctx, configKey{}, cfg)
	ctx = context.WithValue(ctx, registryKey{}, r)

	return ctx, nil
}

func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet(OSFlag) {
		cfg.OS = cmd.String(OSFlag)
	}

	if cmd.IsSet(TimeoutFlag) {
		cfg.Timeout = cmd.Duration(TimeoutFlag)
	}

	if cmd.IsSet(LogLevelFlag) {
		cfg.LogLevel = cmd.String(LogLevelFlag)
	}

	if cmd.IsSet(LogFormatFlag) {
		cfg.LogFormat = cmd.String(LogFormatFlag)
	}
}

// Registry returns the registry stored by Before.
func Registry(ctx context.Context) (*registry.Registry, error) {
	r, ok := ctx.Value(registryKey{}).(*registry.Registry)
	if !ok || r == nil {
		return nil, ErrNoRegistry
	}

	return r, nil
}

// Config returns the configuration stored by Before.
func Config(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("%w: no configuration", ErrNoRegistry)
	}

	return cfg, nil
}
