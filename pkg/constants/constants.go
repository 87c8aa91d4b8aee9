// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package constants

import "time"

const (
	// EtcPVE is the mount point of the clustered configuration
	// filesystem (pmxcfs).
	EtcPVE = "/etc/pve"

	// NodesDirName is the directory under EtcPVE that holds one
	// subdirectory per cluster node, keyed by the node short name.
	NodesDirName = "nodes"

	// QemuDirName holds the virtual machine configs of a node.
	QemuDirName = "qemu-server"

	// LxcDirName holds the container configs of a node.
	LxcDirName = "lxc"

	// ResourceConfigExt is the extension of a VM or container config
	// file.  The base name is the numeric resource id.
	ResourceConfigExt = ".conf"

	StorageConfigPath  = "/etc/pve/storage.cfg"
	CorosyncConfigPath = "/etc/pve/corosync.conf"

	HostnamePath = "/etc/hostname"
	HostsPath    = "/etc/hosts"
	MailnamePath = "/etc/mailname"
	PostfixPath  = "/etc/postfix/main.cf"

	// RRDBasePath is where the monitoring daemon keeps its databases.
	RRDBasePath = "/var/lib/rrdcached/db"
)

const (
	// StateDir holds the resume job file and backup snapshots.
	StateDir = "/var/lib/pve-rename"

	// JobFileName is the resume token written before the reboot and
	// consumed by the post-reboot phase.
	JobFileName = "pending-rename.yaml"

	// BackupDirPrefix prefixes the timestamped snapshot directories.
	BackupDirPrefix = "backup-"

	// EnvFile optionally overrides the timing defaults below.
	EnvFile = "/etc/pve-rename.env"
)

// Timing defaults.  pmxcfs materializes the new node directory
// asynchronously after the hostname change, so the post-reboot phase
// polls for it and paces individual config moves.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxPolls     = 30
	DefaultMoveDelay    = time.Second
)

// Environment variable names recognized in EnvFile.
const (
	EnvPollInterval = "PVE_RENAME_POLL_INTERVAL"
	EnvMaxPolls     = "PVE_RENAME_MAX_POLLS"
	EnvMoveDelay    = "PVE_RENAME_MOVE_DELAY"
	EnvStateDir     = "PVE_RENAME_STATE_DIR"
)
