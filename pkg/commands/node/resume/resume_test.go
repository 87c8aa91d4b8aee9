// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package resume

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/file"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/pve"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/report"
)

func testMigrator(t *testing.T) *migrator {
	t.Helper()
	tmp := t.TempDir()

	old, err := hostname.Parse("pve1.old.local")
	require.NoError(t, err)
	new, err := hostname.Parse("pve2.new.local")
	require.NoError(t, err)

	hosts := filepath.Join(tmp, "hosts")
	require.NoError(t, os.WriteFile(hosts, []byte("10.0.0.5 pve2.new.local pve2\n"), 0644))

	return &migrator{
		opts: Options{
			PollInterval: time.Millisecond,
			MaxPolls:     3,
			MoveDelay:    0,
		},
		layout: pve.Layout{
			PVERoot: filepath.Join(tmp, "pve"),
			RRDBase: filepath.Join(tmp, "rrd"),
			Hosts:   hosts,
		},
		old: old,
		new: new,
		rep: report.New(),
	}
}

func seedOldConfigs(t *testing.T, m *migrator, qemu []string, lxc []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(m.layout.QemuDir(m.old.Short), 0755))
	require.NoError(t, os.MkdirAll(m.layout.LxcDir(m.old.Short), 0755))
	for _, name := range qemu {
		require.NoError(t, os.WriteFile(filepath.Join(m.layout.QemuDir(m.old.Short), name), []byte("cores: 2\n"), 0644))
	}
	for _, name := range lxc {
		require.NoError(t, os.WriteFile(filepath.Join(m.layout.LxcDir(m.old.Short), name), []byte("cores: 1\n"), 0644))
	}
}

// After a clean run the resource configs form a partition: the old
// node directory is gone and the new one holds exactly the old set.
func TestRunMigratesAllConfigs(t *testing.T) {
	m := testMigrator(t)
	seedOldConfigs(t, m, []string{"100.conf", "101.conf"}, []string{"200.conf"})

	// Simulate pmxcfs having materialized the new node tree
	require.NoError(t, os.MkdirAll(m.layout.QemuDir(m.new.Short), 0755))

	oldRRD := filepath.Join(m.layout.RRDBase, "pve2-storage", m.old.Short)
	require.NoError(t, os.MkdirAll(oldRRD, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(oldRRD, "local"), []byte("x"), 0644))

	m.run()

	names, err := file.ListByExt(m.layout.QemuDir(m.new.Short), ".conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"100.conf", "101.conf"}, names)

	names, err = file.ListByExt(m.layout.LxcDir(m.new.Short), ".conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"200.conf"}, names)

	assert.NoDirExists(t, m.layout.NodeDir(m.old.Short))
	assert.NoDirExists(t, oldRRD)
	assert.Equal(t, 0, warningsFor(m, "migrate resource configs"))
}

// When the new node directory never appears the wait gives up after
// its poll budget, the migration is skipped, and nothing is lost.
func TestRunTimesOut(t *testing.T) {
	m := testMigrator(t)
	seedOldConfigs(t, m, []string{"100.conf"}, nil)

	oldRRD := filepath.Join(m.layout.RRDBase, "pve2-node", m.old.Short)
	require.NoError(t, os.MkdirAll(filepath.Dir(oldRRD), 0755))
	require.NoError(t, os.WriteFile(oldRRD, []byte("x"), 0644))

	done := make(chan struct{})
	go func() {
		m.run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("state machine did not terminate")
	}

	// The config stayed put and its directory was not deleted
	assert.FileExists(t, filepath.Join(m.layout.QemuDir(m.old.Short), "100.conf"))

	// Monitoring cleanup still ran
	assert.NoFileExists(t, oldRRD)
}

// A failed move is logged and skipped; the rest of the configs still
// migrate and the old node directory survives because it is not empty.
func TestRunToleratesPartialFailure(t *testing.T) {
	m := testMigrator(t)
	seedOldConfigs(t, m, []string{"100.conf", "101.conf"}, nil)

	require.NoError(t, os.MkdirAll(m.layout.QemuDir(m.new.Short), 0755))

	// Make the target of 100.conf an occupied directory so the rename
	// fails for that one id only
	blocker := filepath.Join(m.layout.QemuDir(m.new.Short), "100.conf")
	require.NoError(t, os.MkdirAll(blocker, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(blocker, "x"), []byte("x"), 0644))

	m.run()

	assert.FileExists(t, filepath.Join(m.layout.QemuDir(m.old.Short), "100.conf"))
	assert.FileExists(t, filepath.Join(m.layout.QemuDir(m.new.Short), "101.conf"))
	assert.DirExists(t, m.layout.NodeDir(m.old.Short))
	assert.Equal(t, 1, warningsFor(m, "migrate resource configs"))
}

// The old node directory is never deleted while any file remains
// anywhere in its subtree, even somewhere unexpected.
func TestRunKeepsNonEmptyOldDir(t *testing.T) {
	m := testMigrator(t)
	seedOldConfigs(t, m, nil, nil)

	stray := filepath.Join(m.layout.NodeDir(m.old.Short), "priv", "notes")
	require.NoError(t, os.MkdirAll(filepath.Dir(stray), 0755))
	require.NoError(t, os.WriteFile(stray, []byte("keep me"), 0644))

	require.NoError(t, os.MkdirAll(m.layout.QemuDir(m.new.Short), 0755))

	m.run()

	assert.FileExists(t, stray)
}

func warningsFor(m *migrator, step string) int {
	n := 0
	for _, s := range m.rep.Steps() {
		if s.Name == step && s.Outcome == report.Warning {
			n++
		}
	}
	return n
}
