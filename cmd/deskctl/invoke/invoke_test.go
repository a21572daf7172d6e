// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invoke

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/matt-FFFFFF/deskctl/cmd/deskctl/setup"
	"github.com/matt-FFFFFF/deskctl/internal/config"
	"github.com/matt-FFFFFF/deskctl/internal/platform"
	"github.com/matt-FFFFFF/deskctl/internal/procexec/procexectest"
	"github.com/matt-FFFFFF/deskctl/internal/registry"
	"github.com/matt-FFFFFF/deskctl/internal/validate"
	"github.com/matt-FFFFFF/deskctl/internal/variants"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// run executes args against a root command whose registry spawns through rec.
func run(t *testing.T, rec *procexectest.Recorder, args ...string) (string, error) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/Users/me", 0o755))

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})
	stubs.Stub(&setup.NewRegistry, func(cfg *config.Config) (*registry.Registry, error) {
		id, err := cfg.Platform()
		if err != nil {
			return nil, err
		}

		return registry.New(registry.WithOS(id), registry.WithExecutor(rec), registry.WithFs(fs)), nil
	})
	t.Cleanup(stubs.Reset)

	out := &bytes.Buffer{}
	root := &cli.Command{
		Name:      "deskctl",
		Flags:     setup.Flags(),
		Before:    setup.Before,
		Commands:  Commands(),
		Writer:    out,
		ErrWriter: io.Discard,
	}

	err := root.Run(context.Background(), append([]string{"deskctl"}, args...))

	return out.String(), err
}

func TestFileManage(t *testing.T) {
	rec := &procexectest.Recorder{}

	_, err := run(t, rec, "--os", "darwin", "file-manage", "/Users/me")
	require.NoError(t, err)
	assert.Equal(t, []string{"open '/Users/me'"}, rec.Calls())

	_, err = run(t, rec, "--os", "darwin", "file-manage", "/Users/you")
	require.ErrorIs(t, err, ErrInvoke)
	require.ErrorIs(t, err, validate.ErrArgument)
	assert.Equal(t, 1, rec.Count())
}

func TestOpenBrowser(t *testing.T) {
	rec := &procexectest.Recorder{}

	_, err := run(t, rec, "--os", "windows", "ob", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{`start "" "https://example.com"`}, rec.Calls())
}

func TestMsgBox(t *testing.T) {
	rec := &procexectest.Recorder{Script: procexectest.Lines("", 1)}

	out, err := run(t, rec, "--os", "windows", "msg-box", "Hello", "World")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestGateway(t *testing.T) {
	t.Run("resolves", func(t *testing.T) {
		rec := &procexectest.Recorder{Script: procexectest.Lines("default 192.168.1.1 UGSc en0\n", 0)}

		out, err := run(t, rec, "--os", "darwin", "gateway", "en0")
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.1\n", out)
	})

	t.Run("unsupported on windows", func(t *testing.T) {
		rec := &procexectest.Recorder{}

		_, err := run(t, rec, "--os", "windows", "gateway", "Ethernet")
		require.ErrorIs(t, err, variants.ErrUnsupportedPlatform)
		assert.Zero(t, rec.Count())
	})

	t.Run("unsupported os", func(t *testing.T) {
		rec := &procexectest.Recorder{}

		_, err := run(t, rec, "--os", string(platform.Linux), "gw", "eth0")
		require.ErrorIs(t, err, variants.ErrUnsupportedPlatform)
	})
}
