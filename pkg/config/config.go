// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
)

// Timing carries the tunables of the rename workflow.  Defaults come
// from pkg/constants, an optional environment file can override them,
// and command line flags override both.
type Timing struct {
	// PollInterval is the pause between checks for the new node
	// directory in pmxcfs.
	PollInterval time.Duration

	// MaxPolls bounds the wait for the new node directory.
	MaxPolls int

	// MoveDelay is the pause between successive resource config
	// moves.  pmxcfs needs time to synchronize each write across the
	// cluster; moving configs back to back has been seen to lose
	// writes, so do not set this to zero on a real cluster.
	MoveDelay time.Duration

	// StateDir holds the resume job file and backup snapshots.
	StateDir string
}

// Default returns the built-in timing values.
func Default() Timing {
	return Timing{
		PollInterval: constants.DefaultPollInterval,
		MaxPolls:     constants.DefaultMaxPolls,
		MoveDelay:    constants.DefaultMoveDelay,
		StateDir:     constants.StateDir,
	}
}

// Load builds the effective timing configuration.  A missing
// environment file is fine; a malformed value in it is logged and the
// default kept.
func Load() Timing {
	return loadFrom(constants.EnvFile)
}

func loadFrom(envFile string) Timing {
	t := Default()

	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			log.Warnf("Could not read %s: %v", envFile, err)
		}
	}

	if v := os.Getenv(constants.EnvPollInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			t.PollInterval = d
		} else {
			log.Warnf("Ignoring invalid %s=%q", constants.EnvPollInterval, v)
		}
	}
	if v := os.Getenv(constants.EnvMaxPolls); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			t.MaxPolls = n
		} else {
			log.Warnf("Ignoring invalid %s=%q", constants.EnvMaxPolls, v)
		}
	}
	if v := os.Getenv(constants.EnvMoveDelay); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			t.MoveDelay = d
		} else {
			log.Warnf("Ignoring invalid %s=%q", constants.EnvMoveDelay, v)
		}
	}
	if v := os.Getenv(constants.EnvStateDir); v != "" {
		t.StateDir = v
	}

	return t
}
