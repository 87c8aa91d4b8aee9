// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package pve encodes the on-disk conventions of a Proxmox VE node:
// the pmxcfs directory tree, the storage and cluster config files, and
// the monitoring databases.  All paths hang off a Layout value so the
// same code runs against a scratch directory in tests.
package pve

import (
	"path/filepath"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
)

// Layout is the set of roots everything in this package works under.
// pmxcfs keys node directories by the short name; nothing in here ever
// takes an FQDN.
type Layout struct {
	// PVERoot is the pmxcfs mount point, normally /etc/pve.
	PVERoot string

	// RRDBase is the monitoring database root, normally
	// /var/lib/rrdcached/db.
	RRDBase string

	Hostname string
	Hosts    string
	Mailname string
	Postfix  string
}

// DefaultLayout returns the layout of a real node.
func DefaultLayout() Layout {
	return Layout{
		PVERoot:  constants.EtcPVE,
		RRDBase:  constants.RRDBasePath,
		Hostname: constants.HostnamePath,
		Hosts:    constants.HostsPath,
		Mailname: constants.MailnamePath,
		Postfix:  constants.PostfixPath,
	}
}

// StorageConfig is the path of storage.cfg.
func (l Layout) StorageConfig() string {
	return filepath.Join(l.PVERoot, "storage.cfg")
}

// CorosyncConfig is the path of the cluster membership config.
func (l Layout) CorosyncConfig() string {
	return filepath.Join(l.PVERoot, "corosync.conf")
}

// NodeDir is the top-level pmxcfs directory of one node.
func (l Layout) NodeDir(short string) string {
	return filepath.Join(l.PVERoot, constants.NodesDirName, short)
}

// QemuDir holds the VM configs of one node.
func (l Layout) QemuDir(short string) string {
	return filepath.Join(l.NodeDir(short), constants.QemuDirName)
}

// LxcDir holds the container configs of one node.
func (l Layout) LxcDir(short string) string {
	return filepath.Join(l.NodeDir(short), constants.LxcDirName)
}

// ResourceDirs returns the per-resource config subdirectories of one
// node, VM configs first.
func (l Layout) ResourceDirs(short string) []string {
	return []string{l.QemuDir(short), l.LxcDir(short)}
}
