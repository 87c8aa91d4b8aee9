// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package pve

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/file"
)

// rrdDatabases are the monitoring database subdirectories that key
// entries by node short name.  pve2-node entries are single files,
// pve2-storage entries are directories, and pve-node-9.0 is the layout
// newer releases use; the copy handles all three shapes.
var rrdDatabases = []string{
	"pve2-node",
	"pve2-storage",
	"pve-node-9.0",
}

// CopyRRD duplicates the monitoring data of the old node name under
// the new one.  A copy is enough: the monitoring daemon does not need
// the relocation to be atomic, and the old entries are removed by the
// post-reboot cleanup.  Failures are logged per database and tolerated.
func CopyRRD(base, oldShort, newShort string) {
	for _, db := range rrdDatabases {
		src := filepath.Join(base, db, oldShort)
		fi, err := os.Stat(src)
		if err != nil {
			log.Debugf("No monitoring data at %s", src)
			continue
		}

		dst := filepath.Join(base, db, newShort)
		if fi.IsDir() {
			err = file.CopyTree(src, dst)
		} else {
			err = file.Copy(src, dst)
		}
		if err != nil {
			log.Warnf("Could not copy monitoring data %s: %v", src, err)
			continue
		}
		log.Debugf("Copied monitoring data %s to %s", src, dst)
	}
}

// CleanupRRD removes the monitoring data of the old node name.  This
// always runs in the post-reboot phase, whatever the migration did.
func CleanupRRD(base, oldShort string) {
	for _, db := range rrdDatabases {
		path := filepath.Join(base, db, oldShort)
		if !file.Exists(path) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			log.Warnf("Could not remove monitoring data %s: %v", path, err)
			continue
		}
		log.Debugf("Removed monitoring data %s", path)
	}
}
