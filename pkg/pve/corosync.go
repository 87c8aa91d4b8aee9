// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package pve

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var configVersionRe = regexp.MustCompile(`^(\s*config_version\s*:\s*)(\d+)(\s*)$`)
var nodeNameRe = regexp.MustCompile(`^(\s*name\s*:\s*)(\S+)(\s*)$`)

// RewriteCorosync renames this node inside the cluster membership
// config: the node's name field is substituted and config_version is
// incremented by exactly one so the other members accept the new
// revision.  The increment reads the current value and adds one; it is
// never replaced with a timestamp, which would jump the version for
// every later hand edit.  It reports whether the file changed.
func RewriteCorosync(path string, oldShort, newShort string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	lines := strings.Split(string(content), "\n")
	renamed := false
	bumped := false
	for i, line := range lines {
		if m := nodeNameRe.FindStringSubmatch(line); m != nil && m[2] == oldShort {
			lines[i] = m[1] + newShort + m[3]
			renamed = true
			continue
		}
		if m := configVersionRe.FindStringSubmatch(line); m != nil {
			version, err := strconv.ParseUint(m[2], 10, 64)
			if err != nil {
				return false, fmt.Errorf("config_version %q is not a number", m[2])
			}
			lines[i] = m[1] + strconv.FormatUint(version+1, 10) + m[3]
			bumped = true
		}
	}

	if !renamed {
		return false, fmt.Errorf("no node named %q in %s", oldShort, path)
	}
	if !bumped {
		return false, fmt.Errorf("no config_version in %s", path)
	}

	err = os.WriteFile(path, []byte(strings.Join(lines, "\n")), fi.Mode())
	return err == nil, err
}
