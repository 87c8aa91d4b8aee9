// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package unix

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

type CmdExecutor struct {
	*exec.Cmd
	StdOutBuf bytes.Buffer
	StdErrBuf bytes.Buffer
}

// NewCmdExecutor creates a new CmdExecutor
func NewCmdExecutor(cmdName string, args ...string) *CmdExecutor {
	e := CmdExecutor{
		Cmd:       exec.Command(cmdName, args...),
		StdOutBuf: bytes.Buffer{},
		StdErrBuf: bytes.Buffer{},
	}
	e.Cmd.Stdout = &e.StdOutBuf
	e.Cmd.Stderr = &e.StdErrBuf
	return &e
}

// Output runs the command and returns its standard output.  Stderr is
// folded into the error so callers get something actionable to log.
func (e *CmdExecutor) Output() (string, error) {
	if err := e.Run(); err != nil {
		stderr := strings.TrimSpace(e.StdErrBuf.String())
		if stderr != "" {
			return "", fmt.Errorf("%s: %s: %s", e.Path, err, stderr)
		}
		return "", fmt.Errorf("%s: %w", e.Path, err)
	}
	return e.StdOutBuf.String(), nil
}
