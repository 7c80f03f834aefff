// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package rt1160evk

import (
	"github.com/usbarmory/imxrt-boot/mem"
	"github.com/usbarmory/imxrt-boot/mpu"
)

// Config represents the board memory configuration selecting the optional
// MPU regions and their cache policy.
type Config struct {
	// XIPExternalFlash maps FlexSPI1 flash as read-only cacheable memory
	// for execute-in-place.
	XIPExternalFlash bool
	// SDRAM maps the external SEMC SDRAM as normal memory.
	SDRAM bool
	// WriteThrough selects write-through cache policy for OCRAM and SDRAM.
	WriteThrough bool

	// ICache must be set when the core implements an instruction cache.
	ICache bool
	// DCache must be set when the core implements a data cache.
	DCache bool
}

// DefaultConfig returns the configuration described by package mem.
func DefaultConfig() Config {
	return Config{
		XIPExternalFlash: mem.XIPExternalFlash,
		SDRAM:            mem.SDRAM,
		WriteThrough:     mem.WriteThrough,
		ICache:           mem.ICache,
		DCache:           mem.DCache,
	}
}

func (cfg Config) ramAttributes() mpu.Attributes {
	if cfg.WriteThrough {
		return mpu.NormalWriteThrough
	}

	return mpu.NormalWriteBack
}
