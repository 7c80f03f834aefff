// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"fmt"
	"sort"
)

// Table represents an ordered set of region descriptors.
type Table []Region

// Sorted returns a copy of the table in ascending index order, which is the
// order regions are programmed (lowest priority first).
func (t Table) Sorted() Table {
	s := make(Table, len(t))
	copy(s, t)

	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Index < s[j].Index
	})

	return s
}

// Validate checks every region as well as index uniqueness, n limits indices
// to the number of available hardware slots.
func (t Table) Validate(n int) (err error) {
	var used [MaxRegions]bool

	for i := range t {
		r := &t[i]

		if err = r.Validate(); err != nil {
			return
		}

		if r.Index >= n {
			return fmt.Errorf("region %d, %w (%d slots available)", r.Index, ErrRegionIndex, n)
		}

		if used[r.Index] {
			return fmt.Errorf("region %d, %w (duplicate)", r.Index, ErrRegionIndex)
		}

		used[r.Index] = true
	}

	return
}

// Lookup returns the region with the given index.
func (t Table) Lookup(index int) (*Region, bool) {
	for i := range t {
		if t[i].Index == index {
			return &t[i], true
		}
	}

	return nil, false
}

// Resolve returns the region governing accesses to addr, which is the highest
// index region containing it.
func (t Table) Resolve(addr uint32) (r *Region, found bool) {
	for i := range t {
		if !t[i].Contains(addr) {
			continue
		}

		if !found || t[i].Index > r.Index {
			r = &t[i]
			found = true
		}
	}

	return
}
