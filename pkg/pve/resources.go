// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package pve

import (
	"strconv"
	"strings"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/unix"
)

// ResourceKind distinguishes the two resource types a node hosts.
type ResourceKind string

const (
	KindVM        ResourceKind = "qemu"
	KindContainer ResourceKind = "lxc"
)

// Resource is one VM or container as reported by the lifecycle tools.
type Resource struct {
	ID     int
	Name   string
	Status string
	Kind   ResourceKind
}

// Running reports whether the resource is running.
func (r Resource) Running() bool {
	return r.Status == "running"
}

// ListResources asks qm and pct for the resources on this node.  The
// result is advisory; a node that cannot run the tools just yields an
// error the caller may downgrade to a warning.
func ListResources() ([]Resource, error) {
	qmOut, err := unix.NewCmdExecutor("qm", "list").Output()
	if err != nil {
		return nil, err
	}
	pctOut, err := unix.NewCmdExecutor("pct", "list").Output()
	if err != nil {
		return nil, err
	}

	resources := ParseList(qmOut, KindVM)
	resources = append(resources, ParseList(pctOut, KindContainer)...)
	return resources, nil
}

// ParseList parses `qm list` or `pct list` tabular output.  Both tools
// print a header line followed by one row per resource with the numeric
// id in the first column.  qm puts the status in the third column, pct
// in the second; rows that do not start with an id are skipped, which
// also drops the header.
func ParseList(out string, kind ResourceKind) []Resource {
	resources := []Resource{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}

		r := Resource{ID: id, Kind: kind}
		if kind == KindVM {
			// VMID NAME STATUS ...
			r.Name = fields[1]
			if len(fields) > 2 {
				r.Status = fields[2]
			}
		} else {
			// VMID STATUS ... NAME
			r.Status = fields[1]
			r.Name = fields[len(fields)-1]
		}
		resources = append(resources, r)
	}
	return resources
}

// RunningOnly filters a resource list down to the running ones.
func RunningOnly(resources []Resource) []Resource {
	running := []Resource{}
	for _, r := range resources {
		if r.Running() {
			running = append(running, r)
		}
	}
	return running
}
