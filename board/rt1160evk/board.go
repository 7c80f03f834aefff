// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package rt1160evk provides boot support for the Cortex-M7 core of the NXP
// i.MX RT1160 Evaluation Kit.
package rt1160evk

import (
	"fmt"
	"log"

	"github.com/usbarmory/imxrt-boot/armv7m"
	"github.com/usbarmory/imxrt-boot/internal/reg"
	"github.com/usbarmory/imxrt-boot/led"
	"github.com/usbarmory/imxrt-boot/mem"
)

// CM7 is the Cortex-M7 core.
var CM7 = &armv7m.CPU{
	Bus: reg.Memory,
}

// Init activates the MPU table for the given configuration and non-cacheable
// segment, sets the same segment as default DMA region, then initializes the
// board LEDs. It must be called once, before any DMA or shared memory buffer
// is used.
func Init(cpu *armv7m.CPU, cfg Config, nonCacheStart uint32, nonCacheEnd uint32) (leds *led.State, err error) {
	t, err := ConfigureMPU(cpu, cfg, nonCacheStart, nonCacheEnd)

	if err != nil {
		return nil, fmt.Errorf("could not configure MPU, %w", err)
	}

	log.Printf("MPU enabled with %d regions (xip:%v sdram:%v write-through:%v)",
		len(t), cfg.XIPExternalFlash, cfg.SDRAM, cfg.WriteThrough)

	// DMA buffers must live where the MPU disables caching
	if nc, ok := t.Lookup(NonCacheRegion); ok {
		mem.Init(nc.Base, int(nc.Size))
		log.Printf("DMA region %#.8x-%#.8x", nc.Base, nc.End()-1)
	}

	if leds, err = NewLEDs(cpu.Bus); err != nil {
		return
	}

	leds.Init()

	return
}
