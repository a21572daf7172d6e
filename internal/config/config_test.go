// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	stubFs(t, nil)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	stubFs(t, map[string]string{
		"deskctl.yaml": `
os: macOS
timeout: 30s
log_level: debug
log_format: json
`,
	})

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "deskctl.yaml", cfg.File)
	assert.Equal(t, "macOS", cfg.OS)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.LogFormat)

	os, err := cfg.Platform()
	require.NoError(t, err)
	assert.Equal(t, platform.Darwin, os)

	level, ok := cfg.Level()
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_HCL(t *testing.T) {
	stubFs(t, map[string]string{
		"/etc/deskctl/deskctl.hcl": `
os      = "windows"
timeout = "1m30s"
`,
	})

	cfg, err := Load(context.Background(), "/etc/deskctl/deskctl.hcl")
	require.NoError(t, err)
	assert.Equal(t, "windows", cfg.OS)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoad_DefaultFileOrder(t *testing.T) {
	stubFs(t, map[string]string{
		"deskctl.yml": "os: darwin\n",
		"deskctl.hcl": `os = "windows"`,
	})

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "deskctl.yml", cfg.File)
	assert.Equal(t, "darwin", cfg.OS)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	stubFs(t, map[string]string{"deskctl.yaml": "os: darwin\ntimeout: 5s\n"})
	t.Setenv("DESKCTL_OS", "windows")
	t.Setenv("DESKCTL_TIMEOUT", "2s")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "windows", cfg.OS)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
		path  string
		want  error
	}{
		{"missing explicit file", nil, "nope.yaml", ErrReadConfig},
		{"unknown extension", map[string]string{"deskctl.toml": ""}, "deskctl.toml", ErrUnknownExtension},
		{"unknown yaml field", map[string]string{"deskctl.yaml": "colour: red\n"}, "", ErrParseConfig},
		{"bad hcl", map[string]string{"deskctl.hcl": "os = "}, "", ErrParseConfig},
		{"bad timeout", map[string]string{"deskctl.yaml": "timeout: soon\n"}, "", ErrParseConfig},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubFs(t, tc.files)

			cfg, err := Load(context.Background(), tc.path)
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_BadEnv(t *testing.T) {
	stubFs(t, nil)
	t.Setenv("DESKCTL_TIMEOUT", "forever")

	_, err := Load(context.Background(), "")
	require.ErrorIs(t, err, ErrParseConfig)
}

func TestValidate(t *testing.T) {
	cfg := &Config{OS: "beos", Timeout: -time.Second, LogLevel: "loud", LogFormat: "xml"}

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, platform.ErrUnknownOS)

	for _, field := range []string{"os:", "timeout:", "log_level:", "log_format:"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestPlatform_Host(t *testing.T) {
	os, err := (&Config{}).Platform()
	require.NoError(t, err)
	assert.Equal(t, platform.Detect(), os)

	_, ok := (&Config{}).Level()
	assert.False(t, ok)
}
