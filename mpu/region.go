// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"fmt"

	"github.com/usbarmory/tamago/bits"
)

// MaxRegions is the number of region slots of the Cortex-M7 MPU.
const MaxRegions = 16

// MPU_RBAR fields
const (
	RBAR_ADDR      = 5
	RBAR_ADDR_MASK = 0xffffffe0
	RBAR_VALID     = 4
	RBAR_REGION    = 0
)

// MPU_RASR fields
const (
	RASR_XN     = 28
	RASR_AP     = 24
	RASR_TEX    = 19
	RASR_S      = 18
	RASR_C      = 17
	RASR_B      = 16
	RASR_SRD    = 8
	RASR_SIZE   = 1
	RASR_ENABLE = 0
)

// Region represents an MPU region descriptor. On overlapping address ranges
// the region with the higher index takes precedence.
type Region struct {
	// Index is the region number, which is also its priority.
	Index int
	// Base is the region start address, a multiple of Size.
	Base uint32
	// Size is the region length in bytes, a power of two.
	Size uint64

	// ExecDisable forbids instruction fetches (XN).
	ExecDisable bool
	// AccessPermission selects data access rights (AP).
	AccessPermission AccessPermission
	// Attributes select memory type and cache policy (TEX, S, C, B).
	Attributes Attributes
	// SubRegionDisable disables each of the eight equal sub-regions
	// matching a set bit (SRD).
	SubRegionDisable uint8
}

// Validate checks the region against the MPU encoding constraints.
func (r *Region) Validate() (err error) {
	if r.Index < 0 || r.Index >= MaxRegions {
		return fmt.Errorf("region %d, %w", r.Index, ErrRegionIndex)
	}

	if _, err = SizeClass(r.Size); err != nil {
		return fmt.Errorf("region %d, %w", r.Index, err)
	}

	if !Aligned(r.Base, r.Size) {
		return fmt.Errorf("region %d, %w (base:%#.8x size:%#x)", r.Index, ErrRegionAlignment, r.Base, r.Size)
	}

	if !r.AccessPermission.valid() || r.Attributes.TypeExt > 7 {
		return fmt.Errorf("region %d, %w", r.Index, ErrRegionAttributes)
	}

	return
}

// End returns the first address past the region.
func (r *Region) End() uint64 {
	return uint64(r.Base) + r.Size
}

// Contains returns whether addr falls within an enabled sub-region of r.
func (r *Region) Contains(addr uint32) bool {
	if uint64(addr) < uint64(r.Base) || uint64(addr) >= r.End() {
		return false
	}

	// sub-regions are only supported on regions of 256 bytes or more
	if r.SubRegionDisable == 0 || r.Size < 256 {
		return true
	}

	n := (uint64(addr) - uint64(r.Base)) / (r.Size / 8)

	return r.SubRegionDisable&(1<<n) == 0
}

// RBAR returns the MPU_RBAR value selecting and locating the region.
func (r *Region) RBAR() (rbar uint32) {
	rbar = r.Base & RBAR_ADDR_MASK

	bits.Set(&rbar, RBAR_VALID)
	bits.SetN(&rbar, RBAR_REGION, 0xf, uint32(r.Index))

	return
}

// RASR returns the MPU_RASR value holding the region attributes and size,
// the region must be valid.
func (r *Region) RASR() (rasr uint32) {
	e, _ := SizeClass(r.Size)

	setTo(&rasr, RASR_XN, r.ExecDisable)
	bits.SetN(&rasr, RASR_AP, 0b111, uint32(r.AccessPermission))
	bits.SetN(&rasr, RASR_TEX, 0b111, uint32(r.Attributes.TypeExt))
	setTo(&rasr, RASR_S, r.Attributes.Shareable)
	setTo(&rasr, RASR_C, r.Attributes.Cacheable)
	setTo(&rasr, RASR_B, r.Attributes.Bufferable)
	bits.SetN(&rasr, RASR_SRD, 0xff, uint32(r.SubRegionDisable))
	bits.SetN(&rasr, RASR_SIZE, 0x1f, uint32(e-1))
	bits.Set(&rasr, RASR_ENABLE)

	return
}

// Decode returns the region described by a pair of MPU_RBAR and MPU_RASR
// values, as well as the region enable bit.
func Decode(rbar uint32, rasr uint32) (r Region, enabled bool) {
	r.Index = int(bits.Get(&rbar, RBAR_REGION, 0xf))
	r.Base = rbar & RBAR_ADDR_MASK
	r.Size = Size(int(bits.Get(&rasr, RASR_SIZE, 0x1f)) + 1)

	r.ExecDisable = bits.Get(&rasr, RASR_XN, 1) == 1
	r.AccessPermission = AccessPermission(bits.Get(&rasr, RASR_AP, 0b111))
	r.Attributes.TypeExt = uint8(bits.Get(&rasr, RASR_TEX, 0b111))
	r.Attributes.Shareable = bits.Get(&rasr, RASR_S, 1) == 1
	r.Attributes.Cacheable = bits.Get(&rasr, RASR_C, 1) == 1
	r.Attributes.Bufferable = bits.Get(&rasr, RASR_B, 1) == 1
	r.SubRegionDisable = uint8(bits.Get(&rasr, RASR_SRD, 0xff))

	enabled = bits.Get(&rasr, RASR_ENABLE, 1) == 1

	return
}

func (r Region) String() string {
	xn := "x"

	if r.ExecDisable {
		xn = "-"
	}

	return fmt.Sprintf("MPU:%.2d %#.8x-%#.8x %s %-8s %s",
		r.Index, r.Base, r.End()-1, xn, r.AccessPermission, r.Attributes)
}

func setTo(r *uint32, pos int, val bool) {
	if val {
		bits.Set(r, pos)
	} else {
		bits.Clear(r, pos)
	}
}
