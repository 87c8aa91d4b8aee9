// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
)

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, constants.DefaultPollInterval, d.PollInterval)
	assert.Equal(t, constants.DefaultMaxPolls, d.MaxPolls)
	assert.Equal(t, constants.DefaultMoveDelay, d.MoveDelay)
	assert.Equal(t, constants.StateDir, d.StateDir)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "pve-rename.env")
	content := "PVE_RENAME_POLL_INTERVAL=5s\nPVE_RENAME_MAX_POLLS=7\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	t.Setenv(constants.EnvPollInterval, "")
	os.Unsetenv(constants.EnvPollInterval)
	t.Setenv(constants.EnvMaxPolls, "")
	os.Unsetenv(constants.EnvMaxPolls)

	tm := loadFrom(envFile)
	assert.Equal(t, 5*time.Second, tm.PollInterval)
	assert.Equal(t, 7, tm.MaxPolls)
	assert.Equal(t, constants.DefaultMoveDelay, tm.MoveDelay)
}

func TestLoadEnvironmentWins(t *testing.T) {
	t.Setenv(constants.EnvMoveDelay, "250ms")
	t.Setenv(constants.EnvStateDir, "/tmp/elsewhere")

	tm := loadFrom(filepath.Join(t.TempDir(), "nosuch.env"))
	assert.Equal(t, 250*time.Millisecond, tm.MoveDelay)
	assert.Equal(t, "/tmp/elsewhere", tm.StateDir)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv(constants.EnvPollInterval, "soon")
	t.Setenv(constants.EnvMaxPolls, "-3")

	tm := loadFrom(filepath.Join(t.TempDir(), "nosuch.env"))
	assert.Equal(t, constants.DefaultPollInterval, tm.PollInterval)
	assert.Equal(t, constants.DefaultMaxPolls, tm.MaxPolls)
}
