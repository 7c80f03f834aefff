// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

// Board memory configuration, applied to the MPU table at boot.
const (
	// XIPExternalFlash enables code execution from FlexSPI1 flash.
	XIPExternalFlash = true
	// SDRAM enables the external SEMC SDRAM.
	SDRAM = false
	// WriteThrough selects write-through, instead of write-back, cache
	// policy for OCRAM and SDRAM.
	WriteThrough = false
)

// Cortex-M7 cache implementation.
const (
	ICache = true
	DCache = true
)
