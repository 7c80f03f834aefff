// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tinygo || !cortexm
// +build !tinygo !cortexm

package armv7m

// Barriers are only meaningful on target, hosted builds drive a fake bus.

func dsb() {}
func dmb() {}
func isb() {}
