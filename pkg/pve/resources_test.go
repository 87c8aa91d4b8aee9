// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package pve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const qmListSample = `      VMID NAME                 STATUS     MEM(MB)    BOOTDISK(GB) PID
       100 web                  running    2048              32.00 1234
       101 db                   stopped    4096              64.00 0
`

const pctListSample = `VMID       Status     Lock         Name
102        running                 proxy
103        stopped                 cache
`

func TestParseQmList(t *testing.T) {
	resources := ParseList(qmListSample, KindVM)
	assert.Len(t, resources, 2)

	assert.Equal(t, 100, resources[0].ID)
	assert.Equal(t, "web", resources[0].Name)
	assert.Equal(t, KindVM, resources[0].Kind)
	assert.True(t, resources[0].Running())

	assert.Equal(t, 101, resources[1].ID)
	assert.False(t, resources[1].Running())
}

func TestParsePctList(t *testing.T) {
	resources := ParseList(pctListSample, KindContainer)
	assert.Len(t, resources, 2)

	assert.Equal(t, 102, resources[0].ID)
	assert.Equal(t, "proxy", resources[0].Name)
	assert.Equal(t, KindContainer, resources[0].Kind)
	assert.True(t, resources[0].Running())

	assert.Equal(t, 103, resources[1].ID)
	assert.Equal(t, "cache", resources[1].Name)
	assert.False(t, resources[1].Running())
}

func TestParseListEmpty(t *testing.T) {
	assert.Empty(t, ParseList("", KindVM))
	assert.Empty(t, ParseList("VMID NAME STATUS\n", KindVM))
}

func TestRunningOnly(t *testing.T) {
	all := append(ParseList(qmListSample, KindVM), ParseList(pctListSample, KindContainer)...)
	running := RunningOnly(all)
	assert.Len(t, running, 2)
	for _, r := range running {
		assert.Equal(t, "running", r.Status)
	}
}
