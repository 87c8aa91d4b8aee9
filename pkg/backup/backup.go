// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package backup snapshots the system files the rename touches so an
// operator can recover by hand.  The snapshot is best effort: a file
// that cannot be copied is logged and skipped, never a reason to stop
// the rename.
package backup

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/file"
)

// DefaultPaths is the fixed set of files worth snapshotting before a
// rename.  Missing entries are fine; not every node runs postfix or
// belongs to a cluster.
func DefaultPaths() []string {
	return []string{
		constants.HostnamePath,
		constants.HostsPath,
		constants.MailnamePath,
		constants.PostfixPath,
		constants.StorageConfigPath,
		constants.CorosyncConfigPath,
	}
}

// Snapshot copies each existing path into a fresh timestamped directory
// under stateDir, mirroring the absolute path layout, and returns the
// directory.  Individual copy failures are tolerated.
func Snapshot(stateDir string, paths []string) (string, error) {
	dir := filepath.Join(stateDir, constants.BackupDirPrefix+time.Now().Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	for _, src := range paths {
		if _, err := os.Stat(src); err != nil {
			log.Debugf("Not backing up %s: %v", src, err)
			continue
		}

		dst := filepath.Join(dir, strings.TrimPrefix(src, "/"))
		if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
			log.Warnf("Could not back up %s: %v", src, err)
			continue
		}
		if err := file.Copy(src, dst); err != nil {
			log.Warnf("Could not back up %s: %v", src, err)
		}
	}

	return dir, nil
}
