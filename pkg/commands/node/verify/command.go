// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package verify

import (
	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/job"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/pve"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/report"
)

// Options are the options for the standalone verify command.
type Options struct {
	// NewName is the identity to verify against.  When empty, the
	// resume token is consulted, and failing that the live hostname
	// is checked against its own node directory and hosts entries.
	NewName string

	// StateDir holds the resume token.
	StateDir string
}

// Verify runs the informational checks on demand.  It always exits
// zero; the value is in the report.
func Verify(o Options) error {
	expected, err := expectedIdentity(o)
	if err != nil {
		return err
	}

	rep := report.New()
	Run(pve.DefaultLayout(), expected, rep)
	rep.Summarize("Verification")
	return nil
}

func expectedIdentity(o Options) (hostname.Identity, error) {
	if o.NewName != "" {
		return hostname.Parse(o.NewName)
	}
	if j, err := job.Load(o.StateDir); err == nil {
		log.Debugf("Verifying against the resume token, expecting %s", j.New.FQDN)
		return j.New, nil
	}
	return hostname.Current()
}
