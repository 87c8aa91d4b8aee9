// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package file

import (
	"os"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/util"
)

// ReplaceWords applies whole-word substitutions to a file in place,
// preserving its mode.  It reports whether the content changed.
func ReplaceWords(path string, subs []util.Replacement) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	replaced := util.ReplaceWords(string(content), subs)
	if replaced == string(content) {
		return false, nil
	}

	err = os.WriteFile(path, []byte(replaced), fi.Mode())
	return err == nil, err
}
