// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package util

import (
	"time"
)

// ConditionFunc checks an external condition.  It returns true when the
// condition holds.  A non-nil error aborts the poll immediately.
type ConditionFunc func() (bool, error)

// PollUntil checks a condition at a fixed interval until it holds or the
// attempt budget is spent.  The condition is checked once per attempt,
// with the interval slept between attempts, never after the last one.
// It returns true if the condition held within the budget.
//
// pmxcfs materializes per-node directories asynchronously, so anything
// in this tool that depends on the cluster filesystem catching up waits
// through this function rather than blocking indefinitely.
func PollUntil(cond ConditionFunc, interval time.Duration, maxPolls int) (bool, error) {
	for i := 0; i < maxPolls; i++ {
		ok, err := cond()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if i < maxPolls-1 {
			time.Sleep(interval)
		}
	}
	return false, nil
}
