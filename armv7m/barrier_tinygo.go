// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo && cortexm
// +build tinygo,cortexm

package armv7m

import (
	"device/arm"
)

func dsb() {
	arm.Asm("dsb 0xf")
}

func dmb() {
	arm.Asm("dmb 0xf")
}

func isb() {
	arm.Asm("isb 0xf")
}
