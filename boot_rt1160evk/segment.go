// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tinygo

package main

import (
	"github.com/usbarmory/imxrt-boot/mem"
)

func nonCacheSegment() (start uint32, end uint32) {
	return mem.NonCacheStart, mem.NonCacheStart + mem.NonCacheSize
}
