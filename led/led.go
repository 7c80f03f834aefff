// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package led implements a driver for LEDs connected to GPIO output pins.
//
// Requests for channels outside the configured range are silently ignored.
package led

import (
	"errors"
	"fmt"

	"github.com/usbarmory/imxrt-boot/internal/reg"
)

// Channel represents an LED index within the configured pin table.
type Channel int

// Pin represents the pad and GPIO port bit driving an LED.
type Pin struct {
	// Mux is the IOMUXC SW_MUX_CTL_PAD register of the pad, zero when no
	// pad multiplexing is required.
	Mux uint32
	// MuxMode is the MUX_MODE value selecting the GPIO function.
	MuxMode uint32

	// Data is the GPIO data register (DR).
	Data uint32
	// Dir is the GPIO direction register (GDIR).
	Dir uint32
	// Bit is the pin number within the GPIO port.
	Bit int
}

var ErrInvalidPin = errors.New("invalid LED pin")

// State represents a set of LEDs along with their logical status, it is
// owned by the caller.
type State struct {
	bus  reg.Bus
	pins []Pin
	on   []bool
}

// New validates the channel to pin table and returns the LED state for it,
// channel n is driven by pins[n].
func New(bus reg.Bus, pins []Pin) (s *State, err error) {
	type output struct {
		addr uint32
		bit  int
	}

	seen := make(map[output]bool)

	for ch, p := range pins {
		if p.Bit < 0 || p.Bit > 31 {
			return nil, fmt.Errorf("channel %d, %w (bit %d)", ch, ErrInvalidPin, p.Bit)
		}

		o := output{p.Data, p.Bit}

		if seen[o] {
			return nil, fmt.Errorf("channel %d, %w (duplicate %#.8x:%d)", ch, ErrInvalidPin, p.Data, p.Bit)
		}

		seen[o] = true
	}

	s = &State{
		bus:  bus,
		pins: pins,
		on:   make([]bool, len(pins)),
	}

	return
}

// Init configures all pins as GPIO outputs with every LED switched off. It
// can be called more than once.
func (s *State) Init() {
	for _, p := range s.pins {
		if p.Mux != 0 {
			s.bus.Write(p.Mux, p.MuxMode)
		}
	}

	// switch off all LEDs first to prevent glitches
	for ch := range s.pins {
		s.Clear(Channel(ch))
	}

	for _, p := range s.pins {
		reg.Set(s.bus, p.Dir, p.Bit)
	}
}

// Channels returns the number of configured channels.
func (s *State) Channels() int {
	return len(s.pins)
}

func (s *State) valid(ch Channel) bool {
	return ch >= 0 && int(ch) < len(s.pins)
}

// Set switches on the LED.
func (s *State) Set(ch Channel) {
	if !s.valid(ch) {
		return
	}

	p := s.pins[ch]
	reg.Set(s.bus, p.Data, p.Bit)

	s.on[ch] = true
}

// Clear switches off the LED.
func (s *State) Clear(ch Channel) {
	if !s.valid(ch) {
		return
	}

	p := s.pins[ch]
	reg.Clear(s.bus, p.Data, p.Bit)

	s.on[ch] = false
}

// Toggle inverts the LED status.
func (s *State) Toggle(ch Channel) {
	if !s.valid(ch) {
		return
	}

	if s.on[ch] {
		s.Clear(ch)
	} else {
		s.Set(ch)
	}
}

// On returns whether the LED is switched on, invalid channels are reported
// as off.
func (s *State) On(ch Channel) bool {
	if !s.valid(ch) {
		return false
	}

	return s.on[ch]
}
