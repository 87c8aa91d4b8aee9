// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package pve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storageSample = `dir: local
	path /var/lib/vz
	content iso,vztmpl,backup

lvmthin: local-lvm
	thinpool data
	vgname pve1
	content rootdir,images
	nodes pve1

nfs: shared
	export /srv/pve1
	path /mnt/pve/shared
	server 10.0.0.100
	content images
	nodes pve1,pve2
`

func TestRewriteStorageNodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.cfg")
	require.NoError(t, os.WriteFile(path, []byte(storageSample), 0644))

	changed, err := RewriteStorageNodes(path, "pve1", "pve9")
	assert.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)

	assert.Contains(t, out, "nodes pve9\n")
	assert.Contains(t, out, "nodes pve9,pve2\n")
	// Only node-scope directives change; the volume group and export
	// path that happen to contain the old name do not.
	assert.Contains(t, out, "vgname pve1\n")
	assert.Contains(t, out, "export /srv/pve1\n")
}

func TestRewriteStorageNodesNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.cfg")
	require.NoError(t, os.WriteFile(path, []byte(storageSample), 0644))

	changed, err := RewriteStorageNodes(path, "nosuch", "pve9")
	assert.NoError(t, err)
	assert.False(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, storageSample, string(content))
}
