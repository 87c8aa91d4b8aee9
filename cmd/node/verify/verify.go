// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package verify

import (
	"github.com/spf13/cobra"

	"github.com/m-panczyk/proxmox-hostname-change/cmd/constants"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/cmdutil"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/commands/node/verify"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/config"
)

const (
	CommandName = "verify"
	helpShort   = "Check the final state of a node rename"
	helpLong    = `Re-runs the informational checks the post-reboot phase ends with:
the live hostname, the presence of the node directory in pmxcfs, and
the hosts file entries.  Mismatches are reported as warnings and do not
change the exit code.`
	helpExample = `
pverename node verify
pverename node verify --new-name pve2.example.com
`
)

var options verify.Options

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
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	timing := config.Load()
	cmd.Flags().StringVarP(&options.NewName, constants.FlagNewName, constants.FlagNewNameShort, "", constants.FlagNewNameHelp)
	cmd.Flags().StringVarP(&options.StateDir, constants.FlagStateDir, constants.FlagStateDirShort, timing.StateDir, constants.FlagStateDirHelp)
	return cmd
}

// RunCmd runs the "pverename node verify" command
func RunCmd(cmd *cobra.Command) error {
	return verify.Verify(options)
}
