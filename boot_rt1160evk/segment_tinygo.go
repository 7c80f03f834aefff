// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package main

import (
	"unsafe"
)

//go:extern __NonCache_segment_start__
var __NonCache_segment_start__ [0]byte

//go:extern __NonCache_segment_end__
var __NonCache_segment_end__ [0]byte

// nonCacheSegment returns the non-cacheable segment placed by the linker
// script.
func nonCacheSegment() (start uint32, end uint32) {
	start = uint32(uintptr(unsafe.Pointer(&__NonCache_segment_start__)))
	end = uint32(uintptr(unsafe.Pointer(&__NonCache_segment_end__)))
	return
}
