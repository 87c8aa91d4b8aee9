// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/m-panczyk/proxmox-hostname-change/cmd/root"
)

func main() {
	// Allow timestamps for logging
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	// Allow prefix matching to minimize typing
	cobra.EnablePrefixMatching = true

	flags := pflag.NewFlagSet("pverename", pflag.ExitOnError)
	pflag.CommandLine = flags

	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
