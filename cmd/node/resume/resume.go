// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package resume

import (
	"github.com/spf13/cobra"

	"github.com/m-panczyk/proxmox-hostname-change/cmd/constants"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/cmdutil"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/commands/node/resume"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/config"
)

const (
	CommandName = "resume"
	helpShort   = "Run the post-reboot phase of a node rename"
	helpLong    = `Runs the post-reboot phase of a node rename: waits for pmxcfs to
expose the directory tree of the new node name, moves the VM and
container configs over one file at a time, removes what the old name
left behind, and verifies the final state.  The identities come from
the resume token written before the reboot, or from --old-name and
--new-name if the token was lost.`
	helpExample = `
pverename node resume
pverename node resume --old-name pve1.example.com --new-name pve2.example.com
pverename node resume --max-polls 60 --move-delay 2s
`
)

var options resume.Options

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
	cmd.Flags().StringVarP(&options.OldName, constants.FlagOldName, constants.FlagOldNameShort, "", constants.FlagOldNameHelp)
	cmd.Flags().StringVarP(&options.NewName, constants.FlagNewName, constants.FlagNewNameShort, "", constants.FlagNewNameHelp)
	cmd.Flags().StringVarP(&options.StateDir, constants.FlagStateDir, constants.FlagStateDirShort, timing.StateDir, constants.FlagStateDirHelp)
	cmd.Flags().DurationVarP(&options.PollInterval, constants.FlagPollInterval, constants.FlagPollIntervalShort, timing.PollInterval, constants.FlagPollIntervalHelp)
	cmd.Flags().IntVarP(&options.MaxPolls, constants.FlagMaxPolls, constants.FlagMaxPollsShort, timing.MaxPolls, constants.FlagMaxPollsHelp)
	cmd.Flags().DurationVarP(&options.MoveDelay, constants.FlagMoveDelay, constants.FlagMoveDelayShort, timing.MoveDelay, constants.FlagMoveDelayHelp)
	cmd.Flags().BoolVar(&options.KeepJob, constants.FlagKeepJob, false, constants.FlagKeepJobHelp)
	return cmd
}

// RunCmd runs the "pverename node resume" command
func RunCmd(cmd *cobra.Command) error {
	return resume.Resume(options)
}
