// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package info

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/cmdutil"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
)

const (
	CommandName = "info"
	helpShort   = "Display information about pverename"
	helpLong    = `Display information about pverename that may be difficult to find.`
	helpExample = `
pverename info
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName,
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmdutil.SilenceUsage(cmd)
	cmd.Example = helpExample

	return cmd
}

// RunCmd runs the "pverename info" command
func RunCmd(cmd *cobra.Command) error {
	fmt.Printf("Backup snapshots and the resume token live under %s by default.\n", constants.StateDir)
	fmt.Printf("The optional environment file %s overrides the timing defaults:\n", constants.EnvFile)
	fmt.Printf("  %s  pause between pmxcfs checks (default %s)\n", constants.EnvPollInterval, constants.DefaultPollInterval)
	fmt.Printf("  %s      number of pmxcfs checks (default %d)\n", constants.EnvMaxPolls, constants.DefaultMaxPolls)
	fmt.Printf("  %s     pause between config moves (default %s)\n", constants.EnvMoveDelay, constants.DefaultMoveDelay)
	fmt.Printf("  %s      state directory location\n", constants.EnvStateDir)
	return nil
}
