// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package constants

const (
	FlagNewName      = "new-name"
	FlagNewNameShort = "n"
	FlagNewNameHelp  = "The new fully qualified hostname of the node. Prompted for when omitted on a terminal"

	FlagOldName      = "old-name"
	FlagOldNameShort = "o"
	FlagOldNameHelp  = "The previous fully qualified hostname of the node. Only needed when the resume token was lost"

	FlagAssumeYes      = "yes"
	FlagAssumeYesShort = "y"
	FlagAssumeYesHelp  = "Answer the advisory prompts with yes. Does not opt in to cluster config changes"

	FlagCluster      = "cluster"
	FlagClusterShort = "c"
	FlagClusterHelp  = "Also rewrite the corosync cluster membership config and bump its config_version"

	FlagReboot      = "reboot"
	FlagRebootShort = "r"
	FlagRebootHelp  = "Reboot immediately once the pre-reboot phase completes"

	FlagStateDir      = "state-dir"
	FlagStateDirShort = "s"
	FlagStateDirHelp  = "Directory that holds the resume token and backup snapshots"

	FlagPollInterval      = "poll-interval"
	FlagPollIntervalShort = "i"
	FlagPollIntervalHelp  = "Pause between checks for the new node directory in pmxcfs, such as 2s"

	FlagMaxPolls      = "max-polls"
	FlagMaxPollsShort = "m"
	FlagMaxPollsHelp  = "Number of checks for the new node directory before giving up"

	FlagMoveDelay      = "move-delay"
	FlagMoveDelayShort = "d"
	FlagMoveDelayHelp  = "Pause between successive resource config moves, such as 1s. pmxcfs needs this to sync each write"

	FlagKeepJob     = "keep-job"
	FlagKeepJobHelp = "Leave the resume token in place after a successful resume"
)
