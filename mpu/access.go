// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import (
	"fmt"
)

// AccessPermission represents the MPU_RASR AP field.
type AccessPermission uint8

// Data access permissions (p4-59, Table 4-47, Cortex-M7 Devices Generic User
// Guide).
const (
	// no access
	AP_NONE AccessPermission = 0
	// privileged read/write, unprivileged no access
	AP_PRIV AccessPermission = 1
	// privileged read/write, unprivileged read-only
	AP_URO AccessPermission = 2
	// read/write
	AP_FULL AccessPermission = 3
	// privileged read-only, unprivileged no access
	AP_PRO AccessPermission = 5
	// read-only
	AP_RO AccessPermission = 6
)

func (ap AccessPermission) String() string {
	switch ap {
	case AP_NONE:
		return "none"
	case AP_PRIV:
		return "priv"
	case AP_URO:
		return "priv-rw/user-ro"
	case AP_FULL:
		return "full"
	case AP_PRO:
		return "priv-ro"
	case AP_RO:
		return "ro"
	default:
		return fmt.Sprintf("reserved(%d)", uint8(ap))
	}
}

func (ap AccessPermission) valid() bool {
	return ap <= AP_FULL || ap == AP_PRO || ap == AP_RO
}
