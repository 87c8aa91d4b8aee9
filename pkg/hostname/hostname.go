// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package hostname resolves and validates node identities.  Proxmox
// keys node-scoped directories in pmxcfs by the short name, not the
// FQDN; everything downstream depends on that asymmetry, so both forms
// are carried together from the moment a name enters the program.
package hostname

import (
	"fmt"
	"strings"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/unix"
)

// Identity is one node name in both of its forms.  Short is the
// substring of FQDN before the first dot; when the FQDN has no dot the
// two are equal.
type Identity struct {
	FQDN  string `yaml:"fqdn"`
	Short string `yaml:"short"`
}

const maxNameLen = 253
const maxLabelLen = 63

// Parse validates a user-supplied FQDN against DNS label syntax and
// derives the short name.  It performs no I/O.
func Parse(fqdn string) (Identity, error) {
	if fqdn == "" {
		return Identity{}, fmt.Errorf("hostname is empty")
	}
	if len(fqdn) > maxNameLen {
		return Identity{}, fmt.Errorf("hostname %q is longer than %d characters", fqdn, maxNameLen)
	}

	for _, label := range strings.Split(fqdn, ".") {
		if err := checkLabel(label); err != nil {
			return Identity{}, fmt.Errorf("hostname %q is not valid: %v", fqdn, err)
		}
	}

	short, _, _ := strings.Cut(fqdn, ".")
	return Identity{FQDN: fqdn, Short: short}, nil
}

func checkLabel(label string) error {
	if label == "" {
		return fmt.Errorf("empty label")
	}
	if len(label) > maxLabelLen {
		return fmt.Errorf("label %q is longer than %d characters", label, maxLabelLen)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("label %q starts or ends with a hyphen", label)
	}
	for i := 0; i < len(label); i++ {
		b := label[i]
		ok := b == '-' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		if !ok {
			return fmt.Errorf("label %q contains %q", label, b)
		}
	}
	return nil
}

// Current returns the identity the host answers to right now.  The
// live name is not validated; a node with an unusual current name can
// still be renamed to a well-formed one.
func Current() (Identity, error) {
	fqdn, err := unix.Hostname()
	if err != nil {
		return Identity{}, err
	}
	short, _, _ := strings.Cut(fqdn, ".")
	return Identity{FQDN: fqdn, Short: short}, nil
}
