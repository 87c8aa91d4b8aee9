// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package root

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-panczyk/proxmox-hostname-change/cmd/info"
	"github.com/m-panczyk/proxmox-hostname-change/cmd/node"
)

const (
	CommandName = "pverename"
	helpShort   = "The pverename tool renames a Proxmox VE cluster node"
	helpLong    = `The pverename tool renames a Proxmox VE cluster node in two phases,
separated by a reboot.  The pre-reboot phase rewrites the static
configuration and persists a resume token; the post-reboot phase waits
for pmxcfs to expose the new node directory and moves the VM and
container configs over.`

	flagLogLevel      = "log-level"
	flagLogLevelShort = "l"
	flagLogLevelHelp  = "Sets the log level.  Valid values are \"error\", \"info\", \"debug\", and \"trace\"."
)

var logLevel string

func stringToLogLevel(level string) log.Level {
	switch level {
	case "error":
		return log.ErrorLevel
	case "info":
		return log.InfoLevel
	case "debug":
		return log.DebugLevel
	case "trace":
		return log.TraceLevel
	default:
		log.Fatalf("%s is not a valid log level", level)
	}
	return log.InfoLevel
}

// NewRootCmd - create the root cobra command
func NewRootCmd() *cobra.Command {
	cmd := NewCommand(CommandName, helpShort, helpLong)

	// Add commands
	cmd.AddCommand(node.NewCmd())
	cmd.AddCommand(info.NewCmd())

	cmd.PersistentFlags().StringVarP(&logLevel, flagLogLevel, flagLogLevelShort, "info", flagLogLevelHelp)

	return cmd
}

// NewCommand - utility method to create cobra commands
func NewCommand(use string, short string, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(stringToLogLevel(logLevel))
		},
	}

	// Disable usage output on errors
	cmd.SilenceUsage = true
	return cmd
}
