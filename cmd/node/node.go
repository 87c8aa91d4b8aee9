// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package node

import (
	"github.com/spf13/cobra"

	"github.com/m-panczyk/proxmox-hostname-change/cmd/common"
	"github.com/m-panczyk/proxmox-hostname-change/cmd/node/rename"
	"github.com/m-panczyk/proxmox-hostname-change/cmd/node/resume"
	"github.com/m-panczyk/proxmox-hostname-change/cmd/node/verify"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/cmdutil"
)

const (
	CommandName = "node"
	helpShort   = "Rename this Proxmox VE node"
	helpLong    = `Rename this Proxmox VE node`
	helpExample = `
pverename node <subcommand>
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      common.ArgsCheck,
		ValidArgs: []string{rename.CommandName, resume.CommandName, verify.CommandName},
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.AddCommand(rename.NewCmd())
	cmd.AddCommand(resume.NewCmd())
	cmd.AddCommand(verify.NewCmd())
	return cmd
}

// RunCmd - Run the "pverename node" command
func RunCmd(cmd *cobra.Command) error {
	return nil
}
