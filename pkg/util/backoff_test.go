// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package util

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollUntilSucceeds(t *testing.T) {
	calls := 0
	ok, err := PollUntil(func() (bool, error) {
		calls++
		return calls == 3, nil
	}, time.Millisecond, 10)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, calls)
}

// The poll must terminate after the attempt budget even if the
// condition never holds.
func TestPollUntilBounded(t *testing.T) {
	calls := 0
	ok, err := PollUntil(func() (bool, error) {
		calls++
		return false, nil
	}, time.Millisecond, 5)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 5, calls)
}

func TestPollUntilAbortsOnError(t *testing.T) {
	calls := 0
	ok, err := PollUntil(func() (bool, error) {
		calls++
		return false, fmt.Errorf("broken")
	}, time.Millisecond, 10)

	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}
