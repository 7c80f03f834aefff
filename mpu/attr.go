// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"fmt"
)

// Attributes represents the TEX, S, C and B fields of MPU_RASR which jointly
// select memory type, shareability and cache policy.
type Attributes struct {
	TypeExt    uint8
	Shareable  bool
	Cacheable  bool
	Bufferable bool
}

// Common memory attributes (p4-60, Table 4-48, Cortex-M7 Devices Generic User
// Guide).
var (
	StronglyOrdered    = Attributes{}
	Device             = Attributes{TypeExt: 2}
	NormalWriteThrough = Attributes{Cacheable: true}
	NormalWriteBack    = Attributes{Cacheable: true, Bufferable: true}
	NormalNonCacheable = Attributes{TypeExt: 1}
)

// String returns the memory type and cache policy selected by the attributes.
func (a Attributes) String() (s string) {
	switch {
	case a.TypeExt == 0 && !a.Cacheable && !a.Bufferable:
		return "strongly-ordered"
	case a.TypeExt == 0 && !a.Cacheable && a.Bufferable:
		return "device (shareable)"
	case a.TypeExt == 0 && a.Cacheable && !a.Bufferable:
		s = "normal write-through"
	case a.TypeExt == 0 && a.Cacheable && a.Bufferable:
		s = "normal write-back"
	case a.TypeExt == 1 && !a.Cacheable && !a.Bufferable:
		s = "normal non-cacheable"
	case a.TypeExt == 1 && a.Cacheable && a.Bufferable:
		s = "normal write-back r/w-allocate"
	case a.TypeExt == 2 && !a.Cacheable && !a.Bufferable:
		return "device (non-shareable)"
	default:
		return fmt.Sprintf("tex:%d s:%v c:%v b:%v", a.TypeExt, a.Shareable, a.Cacheable, a.Bufferable)
	}

	if a.Shareable {
		s += " (shareable)"
	}

	return
}
