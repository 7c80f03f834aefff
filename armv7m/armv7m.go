// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package armv7m implements the System Control Block cache maintenance and
// Memory Protection Unit primitives of ARMv7-M cores (e.g. Cortex-M7).
//
// The CPU instance satisfies mpu.Port, register accesses go through a
// reg.Bus so that the same code can drive hardware or a recording fake.
package armv7m

import (
	"github.com/usbarmory/tamago/bits"

	"github.com/usbarmory/imxrt-boot/internal/reg"
	"github.com/usbarmory/imxrt-boot/mpu"
)

// System Control Block registers
const (
	SCB_CCR = 0xe000ed14
	CCR_DC  = 16
	CCR_IC  = 17

	SCB_AIRCR         = 0xe000ed0c
	AIRCR_VECTKEY     = 16
	AIRCR_PRIGROUP    = 8
	AIRCR_SYSRESETREQ = 2

	SCB_SHCSR         = 0xe000ed24
	SHCSR_MEMFAULTENA = 16

	SCB_CCSIDR           = 0xe000ed80
	CCSIDR_NUMSETS       = 13
	CCSIDR_ASSOCIATIVITY = 3

	SCB_CSSELR = 0xe000ed84

	SCB_ICIALLU = 0xe000ef50
	SCB_DCISW   = 0xe000ef60
	SCB_DCCISW  = 0xe000ef74

	SW_WAY = 30
	SW_SET = 5
)

// Memory Protection Unit registers
const (
	MPU_TYPE     = 0xe000ed90
	TYPE_DREGION = 8

	// fields in package mpu (CTRL_*)
	MPU_CTRL = 0xe000ed94

	MPU_RNR  = 0xe000ed98
	MPU_RBAR = 0xe000ed9c
	MPU_RASR = 0xe000eda0
)

// CPU represents an ARMv7-M core.
type CPU struct {
	// Bus is the register bus, reg.Memory on hardware.
	Bus reg.Bus
}

// Regions returns the number of MPU region slots, zero when no MPU is
// implemented.
func (c *CPU) Regions() int {
	return int(reg.Get(c.Bus, MPU_TYPE, TYPE_DREGION, 0xff))
}

// DisableMPU disables the MPU and memory management fault exceptions.
func (c *CPU) DisableMPU() {
	dmb()
	reg.Clear(c.Bus, SCB_SHCSR, SHCSR_MEMFAULTENA)
	reg.Clear(c.Bus, MPU_CTRL, mpu.CTRL_ENABLE)
}

// EnableMPU enables the MPU, with the additional MPU_CTRL bits in ctrl, and
// memory management fault exceptions.
func (c *CPU) EnableMPU(ctrl uint32) {
	bits.Set(&ctrl, mpu.CTRL_ENABLE)
	c.Bus.Write(MPU_CTRL, ctrl)

	reg.Set(c.Bus, SCB_SHCSR, SHCSR_MEMFAULTENA)

	dsb()
	isb()
}

// WriteRegion programs the region slot selected by rbar (VALID bit set).
func (c *CPU) WriteRegion(rbar uint32, rasr uint32) {
	c.Bus.Write(MPU_RBAR, rbar)
	c.Bus.Write(MPU_RASR, rasr)
}

// ReadRegion returns the MPU_RBAR and MPU_RASR values of region slot n.
func (c *CPU) ReadRegion(n int) (rbar uint32, rasr uint32) {
	c.Bus.Write(MPU_RNR, uint32(n))

	rbar = c.Bus.Read(MPU_RBAR)
	rasr = c.Bus.Read(MPU_RASR)

	return
}

// MPUEnabled returns whether the MPU is enabled.
func (c *CPU) MPUEnabled() bool {
	return reg.IsSet(c.Bus, MPU_CTRL, mpu.CTRL_ENABLE)
}

// Control returns the MPU_CTRL register value.
func (c *CPU) Control() uint32 {
	return c.Bus.Read(MPU_CTRL)
}

// Reset requests a system reset, keeping the interrupt priority grouping. On
// hardware it does not return.
func (c *CPU) Reset() {
	var aircr uint32

	bits.SetN(&aircr, AIRCR_VECTKEY, 0xffff, 0x05fa)
	bits.SetN(&aircr, AIRCR_PRIGROUP, 0b111, reg.Get(c.Bus, SCB_AIRCR, AIRCR_PRIGROUP, 0b111))
	bits.Set(&aircr, AIRCR_SYSRESETREQ)

	dsb()
	c.Bus.Write(SCB_AIRCR, aircr)
	dsb()
}
