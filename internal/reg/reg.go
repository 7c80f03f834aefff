// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package reg provides access to memory mapped 32-bit registers through a
// replaceable bus.
package reg

import (
	"sync/atomic"
	"unsafe"

	"github.com/usbarmory/tamago/bits"
)

// Bus represents a 32-bit register address space.
type Bus interface {
	// Read returns the register value at addr.
	Read(addr uint32) uint32
	// Write sets the register value at addr.
	Write(addr uint32, val uint32)
}

type mmio struct{}

func (mmio) Read(addr uint32) uint32 {
	reg := (*uint32)(unsafe.Pointer(uintptr(addr)))
	return atomic.LoadUint32(reg)
}

func (mmio) Write(addr uint32, val uint32) {
	reg := (*uint32)(unsafe.Pointer(uintptr(addr)))
	atomic.StoreUint32(reg, val)
}

// Memory is the physical memory mapped register bus.
var Memory Bus = mmio{}

// Get returns the register field of width mask at bit position pos.
func Get(b Bus, addr uint32, pos int, mask int) uint32 {
	r := b.Read(addr)
	return bits.Get(&r, pos, mask)
}

// IsSet returns whether the register bit at position pos is set.
func IsSet(b Bus, addr uint32, pos int) bool {
	return Get(b, addr, pos, 1) == 1
}

// Set sets the register bit at position pos with a single read-modify-write.
func Set(b Bus, addr uint32, pos int) {
	r := b.Read(addr)
	bits.Set(&r, pos)
	b.Write(addr, r)
}

// Clear clears the register bit at position pos with a single
// read-modify-write.
func Clear(b Bus, addr uint32, pos int) {
	r := b.Read(addr)
	bits.Clear(&r, pos)
	b.Write(addr, r)
}

// SetN sets the register field of width mask at position pos to val.
func SetN(b Bus, addr uint32, pos int, mask int, val uint32) {
	r := b.Read(addr)
	bits.SetN(&r, pos, mask, val)
	b.Write(addr, r)
}
