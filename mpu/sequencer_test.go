// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePort struct {
	slots int
	calls []string
}

func (p *fakePort) Regions() int { return p.slots }
func (p *fakePort) DisableICache() { p.calls = append(p.calls, "DisableICache") }
func (p *fakePort) DisableDCache() { p.calls = append(p.calls, "DisableDCache") }
func (p *fakePort) EnableICache() { p.calls = append(p.calls, "EnableICache") }
func (p *fakePort) EnableDCache() { p.calls = append(p.calls, "EnableDCache") }
func (p *fakePort) DisableMPU() { p.calls = append(p.calls, "DisableMPU") }

func (p *fakePort) EnableMPU(ctrl uint32) {
	p.calls = append(p.calls, fmt.Sprintf("EnableMPU %#x", ctrl))
}

func (p *fakePort) WriteRegion(rbar uint32, rasr uint32) {
	p.calls = append(p.calls, fmt.Sprintf("RBAR %#.8x", rbar), fmt.Sprintf("RASR %#.8x", rasr))
}

func TestSequencerProgram(t *testing.T) {
	port := &fakePort{slots: MaxRegions}

	s := &Sequencer{
		Port:    port,
		ICache:  true,
		DCache:  true,
		Control: 1 << CTRL_PRIVDEFENA,
	}

	assert.Equal(t, Idle, s.State())
	require.NoError(t, s.Program(testTable()))
	assert.Equal(t, CachesReEnabled, s.State())

	assert.Equal(t, []string{
		"DisableICache",
		"DisableDCache",
		"DisableMPU",
		"RBAR 0x00000010",
		"RASR 0x1000003f",
		"RBAR 0x20200016",
		"RASR 0x03030027",
		"RBAR 0x2024001a",
		"RASR 0x03080023",
		"EnableMPU 0x4",
		"EnableDCache",
		"EnableICache",
	}, port.calls)
}

func TestSequencerNoCaches(t *testing.T) {
	port := &fakePort{slots: MaxRegions}
	s := &Sequencer{Port: port}

	require.NoError(t, s.Program(testTable().Sorted()[:1]))

	assert.Equal(t, []string{
		"DisableMPU",
		"RBAR 0x00000010",
		"RASR 0x1000003f",
		"EnableMPU 0x0",
	}, port.calls)
}

func TestSequencerInvalidTable(t *testing.T) {
	port := &fakePort{slots: MaxRegions}
	s := &Sequencer{Port: port, ICache: true, DCache: true}

	tbl := append(testTable(), Region{Index: 11, Base: 0x20220000, Size: 0x40000, AccessPermission: AP_FULL})

	assert.ErrorIs(t, s.Program(tbl), ErrRegionAlignment)
	assert.Empty(t, port.calls)
	assert.Equal(t, Idle, s.State())
}

func TestSequencerNoMPU(t *testing.T) {
	port := &fakePort{}
	s := &Sequencer{Port: port}

	assert.ErrorIs(t, s.Program(testTable()), ErrNoMPU)
	assert.Empty(t, port.calls)
}
