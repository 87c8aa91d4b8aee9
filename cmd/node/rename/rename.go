// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package rename

import (
	"github.com/spf13/cobra"

	"github.com/m-panczyk/proxmox-hostname-change/cmd/constants"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/cmdutil"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/commands/node/rename"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/config"
)

const (
	CommandName = "rename"
	helpShort   = "Run the pre-reboot phase of a node rename"
	helpLong    = `Runs the pre-reboot phase of a node rename: checks for running
resources, snapshots the affected system files, rewrites the hostname,
hosts, mail, storage and optionally cluster configuration, copies the
monitoring databases, and persists a resume token.  The rename
completes after a reboot with "pverename node resume".`
	helpExample = `
pverename node rename
pverename node rename --new-name pve2.example.com --cluster --reboot
`
)

var options rename.Options

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
	cmd.Flags().BoolVarP(&options.AssumeYes, constants.FlagAssumeYes, constants.FlagAssumeYesShort, false, constants.FlagAssumeYesHelp)
	cmd.Flags().BoolVarP(&options.Cluster, constants.FlagCluster, constants.FlagClusterShort, false, constants.FlagClusterHelp)
	cmd.Flags().BoolVarP(&options.RebootNow, constants.FlagReboot, constants.FlagRebootShort, false, constants.FlagRebootHelp)
	cmd.Flags().StringVarP(&options.StateDir, constants.FlagStateDir, constants.FlagStateDirShort, timing.StateDir, constants.FlagStateDirHelp)
	return cmd
}

// RunCmd runs the "pverename node rename" command
func RunCmd(cmd *cobra.Command) error {
	return rename.Rename(options)
}
