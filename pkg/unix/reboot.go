// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package unix

import "strings"

// Reboot asks systemd to restart the host.  It only returns on failure
// to issue the request.
func Reboot() error {
	_, err := NewCmdExecutor("systemctl", "reboot").Output()
	return err
}

// Hostname returns the fully qualified name the host currently answers
// to, as reported by hostname(1).  The -f form is used because
// /etc/hostname may carry an FQDN while the kernel hostname is short.
func Hostname() (string, error) {
	out, err := NewCmdExecutor("hostname", "-f").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
