// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package armv7m

import (
	"github.com/usbarmory/tamago/bits"

	"github.com/usbarmory/imxrt-boot/internal/reg"
)

// ICacheEnabled returns whether the instruction cache is enabled.
func (c *CPU) ICacheEnabled() bool {
	return reg.IsSet(c.Bus, SCB_CCR, CCR_IC)
}

// DCacheEnabled returns whether the data cache is enabled.
func (c *CPU) DCacheEnabled() bool {
	return reg.IsSet(c.Bus, SCB_CCR, CCR_DC)
}

// EnableICache invalidates and enables the instruction cache, it has no
// effect if the cache is already enabled.
func (c *CPU) EnableICache() {
	if c.ICacheEnabled() {
		return
	}

	dsb()
	isb()

	c.Bus.Write(SCB_ICIALLU, 0)

	dsb()
	isb()

	reg.Set(c.Bus, SCB_CCR, CCR_IC)

	dsb()
	isb()
}

// DisableICache disables and invalidates the instruction cache, it has no
// effect if the cache is already disabled.
func (c *CPU) DisableICache() {
	if !c.ICacheEnabled() {
		return
	}

	dsb()
	isb()

	reg.Clear(c.Bus, SCB_CCR, CCR_IC)
	c.Bus.Write(SCB_ICIALLU, 0)

	dsb()
	isb()
}

// EnableDCache invalidates and enables the data cache, it has no effect if
// the cache is already enabled.
func (c *CPU) EnableDCache() {
	if c.DCacheEnabled() {
		return
	}

	// select level 1 data cache
	c.Bus.Write(SCB_CSSELR, 0)
	dsb()

	c.setWay(SCB_DCISW)
	dsb()

	reg.Set(c.Bus, SCB_CCR, CCR_DC)

	dsb()
	isb()
}

// DisableDCache disables, cleans and invalidates the data cache, it has no
// effect if the cache is already disabled.
func (c *CPU) DisableDCache() {
	if !c.DCacheEnabled() {
		return
	}

	// select level 1 data cache
	c.Bus.Write(SCB_CSSELR, 0)
	dsb()

	reg.Clear(c.Bus, SCB_CCR, CCR_DC)
	dsb()

	c.setWay(SCB_DCCISW)

	dsb()
	isb()
}

// setWay issues a set/way maintenance operation over every line of the
// selected cache.
func (c *CPU) setWay(op uint32) {
	sets := int(reg.Get(c.Bus, SCB_CCSIDR, CCSIDR_NUMSETS, 0x7fff))
	ways := int(reg.Get(c.Bus, SCB_CCSIDR, CCSIDR_ASSOCIATIVITY, 0x3ff))

	for set := sets; set >= 0; set-- {
		for way := ways; way >= 0; way-- {
			var sw uint32

			bits.SetN(&sw, SW_SET, 0x1ff, uint32(set))
			bits.SetN(&sw, SW_WAY, 0b11, uint32(way))

			c.Bus.Write(op, sw)
		}
	}
}
