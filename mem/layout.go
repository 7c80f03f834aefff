// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mem describes the i.MX RT1160 memory map as seen by the Cortex-M7
// core, along with the board memory configuration.
package mem

// On-chip memories
const (
	ITCMStart = 0x00000000
	ITCMSize  = 0x00040000 // 256KB

	DTCMStart = 0x20000000
	DTCMSize  = 0x00040000 // 256KB

	// OCRAM1 and OCRAM2
	OCRAMStart = 0x20200000
	OCRAMSize  = 0x00100000 // 1MB

	// OCRAM M7 (ECC)
	OCRAMM7Start = 0x20300000
	OCRAMM7Size  = 0x00080000 // 512KB
)

// External memories
const (
	// FlexSPI1 execute-in-place window
	FlexSPIStart = 0x30000000
	FlexSPISize  = 0x01000000 // 16MB

	// SEMC SDRAM
	SDRAMStart = 0x80000000
	SDRAMSize  = 0x04000000 // 64MB
)

// Device windows
const (
	SEMCStart = 0x80000000
	SEMCSize  = 0x20000000 // 512MB

	FlexSPIWindowStart = 0x60000000
	FlexSPIWindowSize  = 0x20000000 // 512MB

	LowWindowStart = 0x00000000
	LowWindowSize  = 0x40000000 // 1GB

	AIPS1Start = 0x40000000
	AIPS1Size  = 0x01000000 // 16MB

	AIPS2Start = 0x41000000
	AIPS2Size  = 0x00200000 // 2MB

	AIPS3Start = 0x41400000
	AIPS3Size  = 0x00100000 // 1MB

	AIPS4Start = 0x41800000
	AIPS4Size  = 0x00200000 // 2MB

	// GPIO6-13 (CM7 fast GPIO)
	GPIOM7Start = 0x42000000
	GPIOM7Size  = 0x00100000 // 1MB
)

// Non-cacheable DMA buffer segment, placed at the top of OCRAM1/2 and
// overriding its write-back attributes.
const (
	NonCacheStart = 0x202c0000
	NonCacheSize  = 0x00040000 // 256KB
)
