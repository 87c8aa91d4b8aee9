// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package rename

import (
	"github.com/charmbracelet/huh"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
)

// promptNewName asks for the new FQDN interactively, validating it as
// it is typed.
func promptNewName(current string) (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New fully qualified hostname").
				Description("Currently " + current).
				Validate(func(s string) error {
					_, err := hostname.Parse(s)
					return err
				}).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(title, description string) (bool, error) {
	answer := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return answer, nil
}
