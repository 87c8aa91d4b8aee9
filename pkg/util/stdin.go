// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package util

import (
	"os"
)

// FileIsTTY gives a best guess that a given file represents a TTY or
// PTY.  The current best guess is that the file is a character device.
//
// While it is possible for character devices not to be TTYs, it is
// unlikely to be true in the context of this code.
func FileIsTTY(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, err
	}

	isCharDevice := fi.Mode()&os.ModeCharDevice != 0
	return isCharDevice, nil
}

// StdinIsTTY reports whether the process is attached to an interactive
// terminal.  Prompts are only offered when this is true; otherwise the
// corresponding command line flags are required.
func StdinIsTTY() bool {
	ok, err := FileIsTTY(os.Stdin)
	return err == nil && ok
}
