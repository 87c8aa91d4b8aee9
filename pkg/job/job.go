// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package job persists the rename state that must survive the reboot
// between the two phases.  The file has an explicit schema so the
// post-reboot phase can validate it structurally and fail cleanly on
// corruption instead of guessing at half-written key-value text.
package job

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/constants"
	"github.com/m-panczyk/proxmox-hostname-change/pkg/hostname"
)

// SchemaVersion guards against consuming a token written by an
// incompatible release.
const SchemaVersion = 1

// Job is the resume token for a rename in flight.
type Job struct {
	Schema     int               `yaml:"schema"`
	CreatedAt  time.Time         `yaml:"createdAt"`
	Old        hostname.Identity `yaml:"old"`
	New        hostname.Identity `yaml:"new"`
	BackupPath string            `yaml:"backupPath,omitempty"`
}

// New builds a job for the given identities.
func New(old, new hostname.Identity, backupPath string) *Job {
	return &Job{
		Schema:     SchemaVersion,
		CreatedAt:  time.Now().UTC(),
		Old:        old,
		New:        new,
		BackupPath: backupPath,
	}
}

// Path returns the well-known location of the resume token.
func Path(stateDir string) string {
	return filepath.Join(stateDir, constants.JobFileName)
}

// Save writes the token, creating the state directory if needed.
func Save(stateDir string, j *Job) error {
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return err
	}

	out, err := yaml.Marshal(j)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(stateDir), out, 0600)
}

// Load reads and validates the token.  Any structural problem is an
// error; the post-reboot phase must not act on a token it cannot
// trust.
func Load(stateDir string) (*Job, error) {
	path := Path(stateDir)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	j := &Job{}
	if err := yaml.Unmarshal(content, j); err != nil {
		return nil, fmt.Errorf("could not parse job file %s: %v", path, err)
	}
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("job file %s is not usable: %v", path, err)
	}
	return j, nil
}

// Validate checks the token for structural consistency.
func (j *Job) Validate() error {
	if j.Schema != SchemaVersion {
		return fmt.Errorf("schema %d is not supported (want %d)", j.Schema, SchemaVersion)
	}
	for _, id := range []struct {
		which string
		id    hostname.Identity
	}{{"old", j.Old}, {"new", j.New}} {
		if id.id.FQDN == "" || id.id.Short == "" {
			return fmt.Errorf("%s identity is incomplete", id.which)
		}
		short, _, _ := strings.Cut(id.id.FQDN, ".")
		if short != id.id.Short {
			return fmt.Errorf("%s short name %q does not match fqdn %q", id.which, id.id.Short, id.id.FQDN)
		}
	}
	if j.Old.FQDN == j.New.FQDN {
		return fmt.Errorf("old and new identities are the same")
	}
	return nil
}

// Remove deletes the token once the rename has completed.
func Remove(stateDir string) error {
	err := os.Remove(Path(stateDir))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
