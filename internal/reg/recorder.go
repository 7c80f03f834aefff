// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package reg

// Access represents a single register write.
type Access struct {
	Addr uint32
	Val  uint32
}

// Recorder is a Bus backed by a register map, recording every write in
// order. It stands in for hardware when exercising drivers off target.
type Recorder struct {
	// Mem holds the current register values, unset registers read as zero.
	Mem map[uint32]uint32
	// Writes lists all register writes in the order they were issued.
	Writes []Access
}

// NewRecorder returns an empty register recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Mem: make(map[uint32]uint32),
	}
}

// Read returns the last value written at addr.
func (r *Recorder) Read(addr uint32) uint32 {
	return r.Mem[addr]
}

// Write stores val at addr and records the access.
func (r *Recorder) Write(addr uint32, val uint32) {
	r.Mem[addr] = val
	r.Writes = append(r.Writes, Access{Addr: addr, Val: val})
}

// WritesTo returns the recorded writes targeting addr.
func (r *Recorder) WritesTo(addr uint32) (w []uint32) {
	for _, a := range r.Writes {
		if a.Addr == addr {
			w = append(w, a.Val)
		}
	}

	return
}

// Reset discards the recorded writes, register values are kept.
func (r *Recorder) Reset() {
	r.Writes = nil
}
