// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
)

func TestSnapshot(t *testing.T) {
	src := t.TempDir()
	stateDir := t.TempDir()

	hosts := filepath.Join(src, "etc", "hosts")
	require.NoError(t, os.MkdirAll(filepath.Dir(hosts), 0755))
	require.NoError(t, os.WriteFile(hosts, []byte("10.0.0.5 pve1\n"), 0644))

	missing := filepath.Join(src, "etc", "mailname")

	dir, err := Snapshot(stateDir, []string{hosts, missing})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(dir), constants.BackupDirPrefix))

	// The snapshot mirrors the absolute path layout
	copied, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(hosts, "/")))
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.5 pve1\n", string(copied))

	// Missing sources are skipped, not errors
	assert.NoFileExists(t, filepath.Join(dir, strings.TrimPrefix(missing, "/")))
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	assert.Contains(t, paths, constants.HostnamePath)
	assert.Contains(t, paths, constants.HostsPath)
	assert.Contains(t, paths, constants.StorageConfigPath)
	assert.Contains(t, paths, constants.CorosyncConfigPath)
}
