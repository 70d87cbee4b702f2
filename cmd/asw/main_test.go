//go:build unit

package main

import (
	"path/filepath"
	"testing"

	"github.com/kgossett/asset-sweeper/cmd/asw/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit(t *testing.T) {
	originalConfigPath := cli.ConfigPath
	cli.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { cli.ConfigPath = originalConfigPath }()

	stagingDir := filepath.Join(t.TempDir(), "staging")
	require.NoError(t, runInit(stagingDir, false))

	cfg, err := cli.NewConfigManager().GetConfig()
	require.NoError(t, err)
	assert.Equal(t, stagingDir, cfg.StagingDir)
}

func TestRunInit_ExistingConfigWithoutReset(t *testing.T) {
	originalConfigPath := cli.ConfigPath
	cli.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { cli.ConfigPath = originalConfigPath }()

	first := filepath.Join(t.TempDir(), "first")
	require.NoError(t, runInit(first, false))

	// A second init without --reset must not touch the existing file.
	second := filepath.Join(t.TempDir(), "second")
	require.NoError(t, runInit(second, false))

	cfg, err := cli.NewConfigManager().GetConfig()
	require.NoError(t, err)
	assert.Equal(t, first, cfg.StagingDir)
}

func TestRunInit_Reset(t *testing.T) {
	originalConfigPath := cli.ConfigPath
	cli.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { cli.ConfigPath = originalConfigPath }()

	first := filepath.Join(t.TempDir(), "first")
	require.NoError(t, runInit(first, false))

	second := filepath.Join(t.TempDir(), "second")
	require.NoError(t, runInit(second, true))

	cfg, err := cli.NewConfigManager().GetConfig()
	require.NoError(t, err)
	assert.Equal(t, second, cfg.StagingDir)
}
