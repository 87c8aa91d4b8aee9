// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	r := New()
	r.Ok("first")
	r.Warnf("second", "went sideways: %d", 2)
	r.Skipf("third", "not present")
	r.Ok("fourth")

	steps := r.Steps()
	assert.Len(t, steps, 4)
	assert.Equal(t, Ok, steps[0].Outcome)
	assert.Equal(t, Warning, steps[1].Outcome)
	assert.Equal(t, "went sideways: 2", steps[1].Detail)
	assert.Equal(t, Skipped, steps[2].Outcome)

	assert.Equal(t, 1, r.Warnings())
}
