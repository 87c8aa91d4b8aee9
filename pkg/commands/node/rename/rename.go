// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package rename is the pre-reboot half of a node rename.  It applies
// every change that does not need pmxcfs to have renamed its node
// directory yet, persists a resume token, and hands off to a reboot.
//
// Apart from the hostname checks up front, each step is best effort:
// a failure is recorded as a warning and the sequence continues,
// because none of these edits can be transactional and stopping midway
// leaves the node in a worse state than pressing on.
package rename

import (
	"fmt"
	"os"
	"time"

	"github.com/gosuri/uitable"
	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/backup"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/file"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/job"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/pve"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/report"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/unix"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/util"
)

// Options are the options for the rename command.
type Options struct {
	// NewName is the new FQDN.  When empty and stdin is a terminal,
	// it is prompted for.
	NewName string

	// AssumeYes answers the advisory prompts, such as continuing with
	// resources still running.  It does not opt in to cluster config
	// changes; that always takes Cluster.
	AssumeYes bool

	// Cluster opts in to rewriting corosync.conf.  Mutating cluster
	// membership is higher risk, so it is never implied.
	Cluster bool

	// RebootNow reboots without asking once the phase completes.
	RebootNow bool

	// StateDir holds the resume token and backup snapshots.
	StateDir string
}

type run struct {
	opts   Options
	layout pve.Layout
	old    hostname.Identity
	new    hostname.Identity
	subs   []util.Replacement
	rep    *report.Report
}

// Rename runs the pre-reboot phase.  The only fatal conditions are a
// missing root privilege, a malformed new hostname, and a new hostname
// equal to the current one; everything after that degrades to warnings.
func Rename(o Options) error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("this command must be run as root")
	}

	old, err := hostname.Current()
	if err != nil {
		return fmt.Errorf("could not determine the current hostname: %v", err)
	}

	if o.NewName == "" {
		if !util.StdinIsTTY() {
			return fmt.Errorf("--new-name is required when not running interactively")
		}
		o.NewName, err = promptNewName(old.FQDN)
		if err != nil {
			return err
		}
	}

	new, err := hostname.Parse(o.NewName)
	if err != nil {
		return err
	}
	if new.FQDN == old.FQDN {
		return fmt.Errorf("the new hostname is the same as the current one")
	}

	r := &run{
		opts:   o,
		layout: pve.DefaultLayout(),
		old:    old,
		new:    new,
		// FQDN first: the short name must never be rewritten inside
		// a fully qualified occurrence that was already handled.
		subs: []util.Replacement{
			{Old: old.FQDN, New: new.FQDN},
			{Old: old.Short, New: new.Short},
		},
		rep: report.New(),
	}

	proceed, err := r.checkRunningResources()
	if err != nil {
		return err
	}
	if !proceed {
		log.Info("Rename cancelled, nothing was changed")
		return nil
	}

	log.Infof("Renaming node %s to %s", old.FQDN, new.FQDN)

	backupPath := r.snapshot()
	r.writeHostname()
	r.rewriteHosts()
	r.rewriteMailConfig()
	r.rewriteStorage()
	r.copyMonitoringData()
	if err := r.rewriteCorosync(); err != nil {
		return err
	}
	r.persistJob(backupPath)

	r.rep.Summarize("Pre-reboot phase")
	return r.finish()
}

// checkRunningResources is advisory: running guests will not stop a
// rename, but the operator has to say so explicitly.
func (r *run) checkRunningResources() (bool, error) {
	resources, err := pve.ListResources()
	if err != nil {
		r.rep.Warnf("check running resources", "could not list resources: %v", err)
		return true, nil
	}

	running := pve.RunningOnly(resources)
	if len(running) == 0 {
		r.rep.Ok("check running resources")
		return true, nil
	}

	table := uitable.New()
	table.AddRow("ID", "TYPE", "NAME", "STATUS")
	for _, res := range running {
		table.AddRow(res.ID, string(res.Kind), res.Name, res.Status)
	}
	fmt.Println(table)

	r.rep.Warnf("check running resources", "%d resource(s) still running", len(running))
	if r.opts.AssumeYes {
		return true, nil
	}
	if !util.StdinIsTTY() {
		return false, fmt.Errorf("resources are still running; stop them or pass --yes")
	}
	return confirm(
		fmt.Sprintf("%d resource(s) are still running. Continue anyway?", len(running)),
		"Renaming a node with running guests is not recommended.",
	)
}

func (r *run) snapshot() string {
	dir, err := backup.Snapshot(r.opts.StateDir, backup.DefaultPaths())
	if err != nil {
		r.rep.Warnf("snapshot system files", "%v", err)
		return ""
	}
	log.Infof("Saved a backup snapshot to %s", dir)
	r.rep.Ok("snapshot system files")
	return dir
}

func (r *run) writeHostname() {
	if err := os.WriteFile(r.layout.Hostname, []byte(r.new.FQDN+"\n"), 0644); err != nil {
		r.rep.Warnf("write /etc/hostname", "%v", err)
		return
	}
	r.rep.Ok("write /etc/hostname")
}

func (r *run) rewriteHosts() {
	changed, err := file.ReplaceWords(r.layout.Hosts, r.subs)
	if err != nil {
		r.rep.Warnf("rewrite hosts file", "%v", err)
		return
	}
	if !changed {
		r.rep.Warnf("rewrite hosts file", "%s does not mention %q", r.layout.Hosts, r.old.FQDN)
		return
	}
	r.rep.Ok("rewrite hosts file")
}

func (r *run) rewriteMailConfig() {
	touched := false
	for _, path := range []string{r.layout.Mailname, r.layout.Postfix} {
		if !file.Exists(path) {
			continue
		}
		touched = true
		if _, err := file.ReplaceWords(path, r.subs); err != nil {
			r.rep.Warnf("rewrite mail config", "%s: %v", path, err)
			return
		}
	}
	if !touched {
		r.rep.Skipf("rewrite mail config", "no mail config present")
		return
	}
	r.rep.Ok("rewrite mail config")
}

func (r *run) rewriteStorage() {
	path := r.layout.StorageConfig()
	if !file.Exists(path) {
		r.rep.Skipf("rewrite storage config", "%s not present", path)
		return
	}
	if _, err := pve.RewriteStorageNodes(path, r.old.Short, r.new.Short); err != nil {
		r.rep.Warnf("rewrite storage config", "%v", err)
		return
	}
	r.rep.Ok("rewrite storage config")
}

func (r *run) copyMonitoringData() {
	pve.CopyRRD(r.layout.RRDBase, r.old.Short, r.new.Short)
	r.rep.Ok("copy monitoring data")
}

// rewriteCorosync only runs with explicit opt-in.  Declining is not an
// error; standalone nodes have no corosync.conf at all.
func (r *run) rewriteCorosync() error {
	path := r.layout.CorosyncConfig()
	if !file.Exists(path) {
		r.rep.Skipf("rewrite cluster config", "%s not present", path)
		return nil
	}

	optIn := r.opts.Cluster
	if !optIn && util.StdinIsTTY() {
		var err error
		optIn, err = confirm(
			"Rewrite the cluster membership config?",
			fmt.Sprintf("This edits %s and bumps config_version.", path),
		)
		if err != nil {
			return err
		}
	}
	if !optIn {
		r.rep.Skipf("rewrite cluster config", "not confirmed; rerun with --cluster or edit %s by hand", path)
		return nil
	}

	if _, err := pve.RewriteCorosync(path, r.old.Short, r.new.Short); err != nil {
		r.rep.Warnf("rewrite cluster config", "%v", err)
		return nil
	}
	r.rep.Ok("rewrite cluster config")
	return nil
}

func (r *run) persistJob(backupPath string) {
	j := job.New(r.old, r.new, backupPath)
	if err := job.Save(r.opts.StateDir, j); err != nil {
		r.rep.Warnf("persist resume token", "%v; note the old name, the post-reboot phase will need --old-name %s --new-name %s", err, r.old.FQDN, r.new.FQDN)
		return
	}
	r.rep.Ok("persist resume token")
}

func (r *run) finish() error {
	rebootNow := r.opts.RebootNow
	if !rebootNow && util.StdinIsTTY() {
		var err error
		rebootNow, err = confirm(
			"Reboot now?",
			"The rename completes after a reboot and one run of \"pverename node resume\".",
		)
		if err != nil {
			return err
		}
	}

	if !rebootNow {
		log.Infof("Reboot this node, then run \"pverename node resume\" to finish the rename")
		return nil
	}

	log.Info("Rebooting")
	// Give the log line a moment to land on slow consoles.
	time.Sleep(time.Second)
	if err := unix.Reboot(); err != nil {
		log.Warnf("Could not reboot: %v; reboot manually, then run \"pverename node resume\"", err)
	}
	return nil
}
