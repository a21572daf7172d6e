// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads deskctl settings from a YAML or HCL file and DESKCTL_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/matt-FFFFFF/deskctl/internal/ctxlog"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/spf13/afero"
)

// EnvPrefix is prepended to the env tag of every Config field.
const EnvPrefix = "DESKCTL_"

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("failed to read configuration file")
	// ErrParseConfig is returned when the configuration file or environment cannot be decoded.
	ErrParseConfig = errors.New("failed to parse configuration")
	// ErrUnknownExtension is returned for configuration files that are neither YAML nor HCL.
	ErrUnknownExtension = errors.New("unknown configuration file extension")
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DefaultFiles are looked up in the working directory, in order, when no file is given.
var DefaultFiles = []string{"deskctl.yaml", "deskctl.yml", "deskctl.hcl"}

// Config holds the settings shared by every command.
type Config struct {
	OS        string        `env:"OS"`         // Operating system whose variants are used. Empty means the host.
	Timeout   time.Duration `env:"TIMEOUT"`    // Zero means spawned processes are never killed.
	LogLevel  string        `env:"LOG_LEVEL"`  // Empty keeps the level from the environment.
	LogFormat string        `env:"LOG_FORMAT"` // pretty or json.

	// File is the configuration file that was loaded, if any.
	File string
}

// fileConfig is the on-disk shape of Config.
type fileConfig struct {
	OS        string `yaml:"os"         hcl:"os,optional"`
	Timeout   string `yaml:"timeout"    hcl:"timeout,optional"`
	LogLevel  string `yaml:"log_level"  hcl:"log_level,optional"`
	LogFormat string `yaml:"log_format" hcl:"log_format,optional"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{LogFormat: ctxlog.FormatPretty}
}

// Load reads path, or the first of DefaultFiles that exists when path is empty,
// then applies DESKCTL_* environment variables on top.
// An explicit path must exist. A missing default file is not an error.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := Default()
	fs := FsFactory()

	if path == "" {
		path = findDefault(fs)
	}

	if path != "" {
		if err := cfg.loadFile(fs, path); err != nil {
			return nil, err
		}

		ctxlog.Debug(ctx, "loaded configuration file", "file", path)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	return cfg, nil
}

func findDefault(fs afero.Fs) string {
	for _, name := range DefaultFiles {
		if ok, _ := afero.Exists(fs, name); ok {
			return name
		}
	}

	return ""
}

func (c *Config) loadFile(fs afero.Fs, path string) error {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Join(ErrReadConfig, err)
	}

	var fc fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(content, &fc, yaml.Strict())
	case ".hcl":
		err = hclsimple.Decode(path, content, nil, &fc)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownExtension, path)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParseConfig, path, err)
	}

	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %s: timeout: %w", ErrParseConfig, path, err)
		}

		c.Timeout = d
	}

	if fc.OS != "" {
		c.OS = fc.OS
	}

	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}

	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}

	c.File = path

	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result error

	if c.OS != "" {
		if _, err := platform.Parse(c.OS); err != nil {
			result = multierror.Append(result, fmt.Errorf("os: %w", err))
		}
	}

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout: must not be negative, got %s", c.Timeout))
	}

	if c.LogLevel != "" {
		if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
			result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
		}
	}

	switch strings.ToLower(c.LogFormat) {
	case "", ctxlog.FormatPretty, ctxlog.FormatJSON:
	default:
		result = multierror.Append(result, fmt.Errorf("log_format: %w: %q", ctxlog.ErrUnknownFormat, c.LogFormat))
	}

	if result != nil {
		return errors.Join(ErrInvalidConfig, result)
	}

	return nil
}

// Platform returns the configured operating system, or the host's when none is set.
func (c *Config) Platform() (platform.OS, error) {
	if c.OS == "" {
		return platform.Detect(), nil
	}

	return platform.Parse(c.OS)
}

// Level returns the configured log level. ok is false when no level is set.
func (c *Config) Level() (level slog.Level, ok bool) {
	if c.LogLevel == "" {
		return slog.LevelWarn, false
	}

	level, err := ctxlog.ParseLevel(c.LogLevel)

	return level, err == nil
}
