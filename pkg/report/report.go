// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

// Package report accumulates per-step outcomes so a phase can finish
// with a single summary instead of forcing the operator to scan the
// whole log.  Steps are either fine or degraded; there is no fatal
// entry because fatal preconditions abort before any step runs.
package report

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Outcome int

const (
	Ok Outcome = iota
	Warning
	Skipped
)

// Step is the recorded result of one workflow step.
type Step struct {
	Name    string
	Outcome Outcome
	Detail  string
}

// Report collects step results for one phase.
type Report struct {
	steps []Step
}

func New() *Report {
	return &Report{}
}

// Ok records a successful step.
func (r *Report) Ok(name string) {
	r.steps = append(r.steps, Step{Name: name, Outcome: Ok})
}

// Warnf records a degraded step and logs the warning immediately.
func (r *Report) Warnf(name string, format string, a ...any) {
	detail := fmt.Sprintf(format, a...)
	r.steps = append(r.steps, Step{Name: name, Outcome: Warning, Detail: detail})
	log.Warnf("%s: %s", name, detail)
}

// Skipf records a step that was not attempted, with the reason.
func (r *Report) Skipf(name string, format string, a ...any) {
	detail := fmt.Sprintf(format, a...)
	r.steps = append(r.steps, Step{Name: name, Outcome: Skipped, Detail: detail})
	log.Infof("%s: skipped, %s", name, detail)
}

// Steps returns the recorded steps in order.
func (r *Report) Steps() []Step {
	return r.steps
}

// Warnings returns the number of degraded steps.
func (r *Report) Warnings() int {
	n := 0
	for _, s := range r.steps {
		if s.Outcome == Warning {
			n++
		}
	}
	return n
}

// Summarize writes the final per-step report to the log.
func (r *Report) Summarize(phase string) {
	log.Infof("%s summary:", phase)
	for _, s := range r.steps {
		switch s.Outcome {
		case Ok:
			log.Infof("  %s: ok", s.Name)
		case Warning:
			log.Warnf("  %s: %s", s.Name, s.Detail)
		case Skipped:
			log.Infof("  %s: skipped (%s)", s.Name, s.Detail)
		}
	}
	if n := r.Warnings(); n > 0 {
		log.Warnf("%s finished with %d warning(s); see the backup snapshot if manual recovery is needed", phase, n)
	}
}
