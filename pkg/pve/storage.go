// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package pve

import (
	"os"
	"strings"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/util"
)

// RewriteStorageNodes substitutes the old short name for the new one in
// the node-scope directives of storage.cfg.  Only lines of the form
// "nodes <list>" are touched; storage ids or paths that happen to
// contain the old name are left alone.  It reports whether the file
// changed.
func RewriteStorageNodes(path string, oldShort, newShort string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	lines := strings.Split(string(content), "\n")
	changed := false
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "nodes ") {
			continue
		}
		replaced := util.ReplaceWord(line, oldShort, newShort)
		if replaced != line {
			lines[i] = replaced
			changed = true
		}
	}

	if !changed {
		return false, nil
	}
	err = os.WriteFile(path, []byte(strings.Join(lines, "\n")), fi.Mode())
	return err == nil, err
}
