// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package verify holds the informational end-state checks.  They run
// after the point of no return, so a mismatch is reported and never
// changes the exit outcome.
package verify

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/file"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/pve"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/report"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/util"
)

// Run compares the live system state against the expected new
// identity and records one report step per check.
func Run(layout pve.Layout, expected hostname.Identity, rep *report.Report) {
	checkLiveName(expected, rep)
	checkNodeDir(layout, expected, rep)
	checkHosts(layout, expected, rep)
}

func checkLiveName(expected hostname.Identity, rep *report.Report) {
	live, err := hostname.Current()
	if err != nil {
		rep.Warnf("verify hostname", "could not read the live hostname: %v", err)
		return
	}
	if live.FQDN != expected.FQDN || live.Short != expected.Short {
		rep.Warnf("verify hostname", "host answers to %q, expected %q", live.FQDN, expected.FQDN)
		return
	}
	log.Debugf("Live hostname is %s", live.FQDN)
	rep.Ok("verify hostname")
}

func checkNodeDir(layout pve.Layout, expected hostname.Identity, rep *report.Report) {
	dir := layout.NodeDir(expected.Short)
	if !file.IsDir(dir) {
		rep.Warnf("verify node directory", "%s does not exist; pmxcfs may not have caught up", dir)
		return
	}
	rep.Ok("verify node directory")
}

func checkHosts(layout pve.Layout, expected hostname.Identity, rep *report.Report) {
	content, err := os.ReadFile(layout.Hosts)
	if err != nil {
		rep.Warnf("verify hosts file", "could not read %s: %v", layout.Hosts, err)
		return
	}

	// Probe by substitution: if replacing the name as a whole word
	// changes nothing, the name is not present.
	for _, name := range []string{expected.FQDN, expected.Short} {
		if util.ReplaceWord(string(content), name, name+"-probe") == string(content) {
			rep.Warnf("verify hosts file", "%s does not mention %q", layout.Hosts, name)
			return
		}
	}
	rep.Ok("verify hosts file")
}
