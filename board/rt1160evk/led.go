// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package rt1160evk

import (
	"github.com/usbarmory/imxrt-boot/internal/reg"
	"github.com/usbarmory/imxrt-boot/led"
)

// LED pads
const (
	IOMUXC_SW_MUX_CTL_PAD_GPIO_AD_04 = 0x400e8120
	IOMUXC_SW_MUX_CTL_PAD_GPIO_AD_26 = 0x400e8178

	// ALT10, SION disabled
	MUX_MODE_GPIO9 = 0xa
)

// GPIO9 registers
const (
	GPIO9_BASE = 0x40c64000
	GPIO9_DR   = GPIO9_BASE + 0x00
	GPIO9_GDIR = GPIO9_BASE + 0x04
)

// LED channels
const (
	CHANNEL_1 led.Channel = iota
	CHANNEL_2
	CHANNEL_MAX
)

// LEDPins maps board LED channels to their pads, CHANNEL_1 is GPIO_AD_04
// (GPIO9_IO03) and CHANNEL_2 is GPIO_AD_26 (GPIO9_IO25).
var LEDPins = [CHANNEL_MAX]led.Pin{
	CHANNEL_1: {
		Mux:     IOMUXC_SW_MUX_CTL_PAD_GPIO_AD_04,
		MuxMode: MUX_MODE_GPIO9,
		Data:    GPIO9_DR,
		Dir:     GPIO9_GDIR,
		Bit:     3,
	},
	CHANNEL_2: {
		Mux:     IOMUXC_SW_MUX_CTL_PAD_GPIO_AD_26,
		MuxMode: MUX_MODE_GPIO9,
		Data:    GPIO9_DR,
		Dir:     GPIO9_GDIR,
		Bit:     25,
	},
}

// NewLEDs returns the board LED state.
func NewLEDs(bus reg.Bus) (*led.State, error) {
	return led.New(bus, LEDPins[:])
}
