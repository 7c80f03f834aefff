// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"errors"
	"fmt"
)

// Region size limits, expressed as powers of two.
const (
	// 32 bytes
	MinSizeShift = 5
	// 4GB
	MaxSizeShift = 32
)

var (
	ErrRegionSize       = errors.New("invalid region size")
	ErrRegionAlignment  = errors.New("region base not aligned to its size")
	ErrRegionIndex      = errors.New("invalid region index")
	ErrRegionAttributes = errors.New("invalid region attributes")
)

// SizeClass returns the exponent e of the smallest region size 2^e holding n
// bytes. An error is returned unless n is exactly 2^e with e between
// MinSizeShift and MaxSizeShift.
func SizeClass(n uint64) (e int, err error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: zero length", ErrRegionSize)
	}

	for e < 63 && uint64(1)<<e < n {
		e++
	}

	switch {
	case n != uint64(1)<<e:
		return 0, fmt.Errorf("%w: %#x is not a power of two", ErrRegionSize, n)
	case e < MinSizeShift:
		return 0, fmt.Errorf("%w: %d bytes is below the %d bytes granularity", ErrRegionSize, n, Size(MinSizeShift))
	case e > MaxSizeShift:
		return 0, fmt.Errorf("%w: %#x exceeds the address space", ErrRegionSize, n)
	}

	return
}

// Size returns the region length in bytes for size class e.
func Size(e int) uint64 {
	return uint64(1) << e
}

// Aligned returns whether base is a multiple of size.
func Aligned(base uint32, size uint64) bool {
	return size != 0 && uint64(base)%size == 0
}
