// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package resume is the post-reboot half of a node rename.  pmxcfs
// materializes the directory tree for the new node name asynchronously
// after the reboot, so this phase is a small state machine: wait for
// the new directory, move the resource configs over one file at a
// time, clean up what the old name left behind, and verify.
package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/commands/node/verify"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/file"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/job"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/pve"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/report"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/util"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/util/logutils"
)

// Options are the options for the resume command.
type Options struct {
	// OldName and NewName override the persisted job when both are
	// given, for the case where the token was lost with the reboot.
	OldName string
	NewName string

	// StateDir holds the resume token.
	StateDir string

	// PollInterval and MaxPolls bound the wait for pmxcfs to expose
	// the new node directory.
	PollInterval time.Duration
	MaxPolls     int

	// MoveDelay paces the per-file config moves.  pmxcfs syncs each
	// write across the cluster; back-to-back moves have been seen to
	// lose writes, so keep this above zero on a real cluster.
	MoveDelay time.Duration

	// KeepJob leaves the resume token in place afterwards.
	KeepJob bool
}

type state int

const (
	stateWaitForNodeDir state = iota
	stateMigrating
	stateTimedOut
	stateCleanup
	stateVerify
	stateDone
)

type migrator struct {
	opts   Options
	layout pve.Layout
	old    hostname.Identity
	new    hostname.Identity
	rep    *report.Report
}

// Resume runs the post-reboot phase.  Only a missing or corrupt resume
// token (with no identities on the command line) is fatal; every other
// failure degrades to a warning because the reboot already happened and
// forward is the only direction left.
func Resume(o Options) error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("this command must be run as root")
	}

	old, new, usedJob, err := resolveIdentities(o)
	if err != nil {
		return err
	}

	m := &migrator{
		opts:   o,
		layout: pve.DefaultLayout(),
		old:    old,
		new:    new,
		rep:    report.New(),
	}
	m.run()

	m.rep.Summarize("Post-reboot phase")

	if usedJob && !o.KeepJob {
		if err := job.Remove(o.StateDir); err != nil {
			log.Warnf("Could not remove the resume token: %v", err)
		}
	}
	return nil
}

func resolveIdentities(o Options) (hostname.Identity, hostname.Identity, bool, error) {
	if o.OldName != "" && o.NewName != "" {
		old, err := hostname.Parse(o.OldName)
		if err != nil {
			return hostname.Identity{}, hostname.Identity{}, false, err
		}
		new, err := hostname.Parse(o.NewName)
		if err != nil {
			return hostname.Identity{}, hostname.Identity{}, false, err
		}
		return old, new, false, nil
	}
	if o.OldName != "" || o.NewName != "" {
		return hostname.Identity{}, hostname.Identity{}, false, fmt.Errorf("either give both --old-name and --new-name or neither")
	}

	j, err := job.Load(o.StateDir)
	if err != nil {
		return hostname.Identity{}, hostname.Identity{}, false, fmt.Errorf("no usable resume token: %v; pass --old-name and --new-name", err)
	}
	return j.Old, j.New, true, nil
}

// run drives the state machine.  Every path ends in the verify state;
// a timed-out wait skips the migration but never the cleanup or the
// final checks.
func (m *migrator) run() {
	st := stateWaitForNodeDir
	for st != stateDone {
		switch st {
		case stateWaitForNodeDir:
			if m.waitForNodeDir() {
				st = stateMigrating
			} else {
				st = stateTimedOut
			}
		case stateMigrating:
			m.migrate()
			st = stateCleanup
		case stateTimedOut:
			m.rep.Skipf("migrate resource configs", "the directory for %s never appeared", m.new.Short)
			st = stateCleanup
		case stateCleanup:
			m.cleanup()
			st = stateVerify
		case stateVerify:
			verify.Run(m.layout, m.new, m.rep)
			st = stateDone
		}
	}
}

// waitForNodeDir polls for the new node's VM config directory.  pmxcfs
// creates the whole per-node tree once the cluster daemon reacts to the
// hostname change, so one subdirectory is a good readiness probe.
func (m *migrator) waitForNodeDir() bool {
	dir := m.layout.QemuDir(m.new.Short)

	err := logutils.WaitFor(&logutils.Waiter{
		Message: fmt.Sprintf("Waiting for pmxcfs to create %s", dir),
		WaitFunction: func() error {
			ok, err := util.PollUntil(func() (bool, error) {
				return file.IsDir(dir), nil
			}, m.opts.PollInterval, m.opts.MaxPolls)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("gave up after %d polls", m.opts.MaxPolls)
			}
			return nil
		},
	})
	if err != nil {
		m.rep.Warnf("wait for new node directory", "%v", err)
		return false
	}
	m.rep.Ok("wait for new node directory")
	return true
}

// migrate moves every resource config from the old node directories to
// the new ones, one file per operation.  pmxcfs cannot rename a
// directory across the node boundary atomically, only individual
// files, so the relocation is decomposed per resource id.  A failed
// move is logged and the loop continues; nothing is rolled back.
func (m *migrator) migrate() {
	oldDirs := m.layout.ResourceDirs(m.old.Short)
	newDirs := m.layout.ResourceDirs(m.new.Short)

	moved := 0
	failed := 0
	for i := range oldDirs {
		names, err := file.ListByExt(oldDirs[i], constants.ResourceConfigExt)
		if err != nil {
			m.rep.Warnf("migrate resource configs", "could not list %s: %v", oldDirs[i], err)
			continue
		}
		if len(names) == 0 {
			continue
		}

		if err := os.MkdirAll(newDirs[i], 0755); err != nil {
			m.rep.Warnf("migrate resource configs", "could not create %s: %v", newDirs[i], err)
			continue
		}

		for n, name := range names {
			if n > 0 || moved > 0 {
				// Give pmxcfs room to sync the previous move
				// across the cluster before the next one.
				time.Sleep(m.opts.MoveDelay)
			}

			src := filepath.Join(oldDirs[i], name)
			dst := filepath.Join(newDirs[i], name)
			if err := os.Rename(src, dst); err != nil {
				log.Warnf("Could not move %s: %v", src, err)
				failed++
				continue
			}
			log.Infof("Moved %s to %s", src, dst)
			moved++
		}
	}

	if failed > 0 {
		m.rep.Warnf("migrate resource configs", "%d moved, %d left behind under %s", moved, failed, m.layout.NodeDir(m.old.Short))
		return
	}
	log.Infof("Moved %d resource config(s) to %s", moved, m.layout.NodeDir(m.new.Short))
	m.rep.Ok("migrate resource configs")
}

// cleanup removes what the old name left behind.  The monitoring data
// always goes.  The old node directory is only removed when nothing at
// all remains anywhere under it; resource configs are never destroyed
// by force.
func (m *migrator) cleanup() {
	pve.CleanupRRD(m.layout.RRDBase, m.old.Short)
	m.rep.Ok("remove old monitoring data")

	oldDir := m.layout.NodeDir(m.old.Short)
	if !file.Exists(oldDir) {
		m.rep.Ok("remove old node directory")
		return
	}

	count, err := file.CountFiles(oldDir)
	if err != nil {
		m.rep.Warnf("remove old node directory", "could not inspect %s: %v", oldDir, err)
		return
	}
	if count > 0 {
		m.rep.Warnf("remove old node directory", "%s still holds %d file(s); leaving it for manual review", oldDir, count)
		return
	}

	if err := os.RemoveAll(oldDir); err != nil {
		m.rep.Warnf("remove old node directory", "could not remove %s: %v", oldDir, err)
		return
	}
	log.Infof("Removed empty node directory %s", oldDir)
	m.rep.Ok("remove old node directory")
}
