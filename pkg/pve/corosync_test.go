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

const corosyncSample = `totem {
  cluster_name: testcluster
  config_version: 17
  version: 2
}

nodelist {
  node {
    name: pve1
    nodeid: 1
    ring0_addr: 10.0.0.5
  }
  node {
    name: pve2
    nodeid: 2
    ring0_addr: 10.0.0.6
  }
}
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corosync.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRewriteCorosync(t *testing.T) {
	path := writeTemp(t, corosyncSample)

	changed, err := RewriteCorosync(path, "pve1", "pve9")
	assert.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)

	assert.Contains(t, out, "name: pve9")
	assert.NotContains(t, out, "name: pve1")
	// Only this node is renamed
	assert.Contains(t, out, "name: pve2")
	// Incremented by exactly one, never a timestamp
	assert.Contains(t, out, "config_version: 18")
}

// The increment must survive unusual digit counts and whitespace.
func TestRewriteCorosyncVersionFormats(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"config_version: 17", "config_version: 18"},
		{"  config_version:9", "  config_version:10"},
		{"\tconfig_version:   99999", "\tconfig_version:   100000"},
		{"config_version : 0", "config_version : 1"},
	}

	for _, tt := range tests {
		path := writeTemp(t, tt.line+"\nnodelist {\n  node {\n    name: pve1\n  }\n}\n")
		_, err := RewriteCorosync(path, "pve1", "pve9")
		assert.NoError(t, err, tt.line)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), tt.want, tt.line)
	}
}

func TestRewriteCorosyncMissingNode(t *testing.T) {
	path := writeTemp(t, corosyncSample)

	changed, err := RewriteCorosync(path, "nosuch", "pve9")
	assert.Error(t, err)
	assert.False(t, changed)

	// Nothing is written on failure
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corosyncSample, string(content))
}

func TestRewriteCorosyncMissingVersion(t *testing.T) {
	path := writeTemp(t, "nodelist {\n  node {\n    name: pve1\n  }\n}\n")

	_, err := RewriteCorosync(path, "pve1", "pve9")
	assert.Error(t, err)
}
