// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"errors"
)

// MPU_CTRL fields
const (
	CTRL_ENABLE     = 0
	CTRL_HFNMIENA   = 1
	CTRL_PRIVDEFENA = 2
)

// ErrNoMPU is returned when the hardware reports no region slots.
var ErrNoMPU = errors.New("MPU not present")

// Port represents the hardware primitives required to activate an MPU
// region table.
type Port interface {
	// Regions returns the number of MPU region slots.
	Regions() int

	DisableICache()
	DisableDCache()
	EnableICache()
	EnableDCache()

	DisableMPU()
	// EnableMPU sets the MPU_CTRL register to ctrl with the ENABLE bit
	// set.
	EnableMPU(ctrl uint32)
	// WriteRegion programs one region slot, the slot is selected by the
	// MPU_RBAR value which must be written before MPU_RASR.
	WriteRegion(rbar uint32, rasr uint32)
}

// State represents the activation progress of a Sequencer.
type State int

// Activation states, in order.
const (
	Idle State = iota
	CachesDisabled
	MPUDisabled
	RegionsProgrammed
	MPUEnabled
	CachesReEnabled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CachesDisabled:
		return "caches disabled"
	case MPUDisabled:
		return "MPU disabled"
	case RegionsProgrammed:
		return "regions programmed"
	case MPUEnabled:
		return "MPU enabled"
	case CachesReEnabled:
		return "caches re-enabled"
	default:
		return "unknown"
	}
}

// Sequencer activates a region table on a Port, it is meant to run once at
// boot before any code relying on DMA or shared memory buffers.
type Sequencer struct {
	// Port is the hardware interface, it is owned by the Sequencer for the
	// duration of Program.
	Port Port

	// ICache must be set when the core implements an instruction cache.
	ICache bool
	// DCache must be set when the core implements a data cache.
	DCache bool

	// Control holds additional MPU_CTRL bits (e.g. 1 << CTRL_PRIVDEFENA).
	Control uint32

	state State
}

// State returns the current activation state.
func (s *Sequencer) State() State {
	return s.state
}

// Program validates the table and, only if valid, programs it with caches and
// MPU disabled. Regions are written in ascending index order, so that higher
// index regions override lower ones, then the MPU and caches are enabled.
//
// Calling Program more than once is not supported.
func (s *Sequencer) Program(t Table) (err error) {
	n := s.Port.Regions()

	if n == 0 {
		return ErrNoMPU
	}

	t = t.Sorted()

	if err = t.Validate(n); err != nil {
		return
	}

	if s.ICache {
		s.Port.DisableICache()
	}

	if s.DCache {
		s.Port.DisableDCache()
	}

	s.state = CachesDisabled

	s.Port.DisableMPU()
	s.state = MPUDisabled

	for i := range t {
		s.Port.WriteRegion(t[i].RBAR(), t[i].RASR())
	}

	s.state = RegionsProgrammed

	s.Port.EnableMPU(s.Control)
	s.state = MPUEnabled

	if s.DCache {
		s.Port.EnableDCache()
	}

	if s.ICache {
		s.Port.EnableICache()
	}

	s.state = CachesReEnabled

	return
}
