// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/tamago/bits"

	"github.com/usbarmory/imxrt-boot/armv7m"
	"github.com/usbarmory/imxrt-boot/mpu"
)

// CPU is the core inspected by MPU and cache commands.
var CPU *armv7m.CPU

func init() {
	Add(Cmd{
		Name: "mpu",
		Help: "show MPU regions",
		Fn:   mpuCmd,
	})

	Add(Cmd{
		Name:    "mpu ",
		Args:    1,
		Pattern: regexp.MustCompile(`^mpu (\d+)$`),
		Syntax:  "<index>",
		Help:    "show MPU region registers",
		Fn:      mpuCmd,
	})

	Add(Cmd{
		Name: "cache",
		Help: "show cache and MPU control",
		Fn:   cacheCmd,
	})
}

func readRegion(i int) string {
	rbar, rasr := CPU.ReadRegion(i)
	r, enabled := mpu.Decode(rbar, rasr)

	if !enabled {
		return fmt.Sprintf("MPU:%.2d disabled", i)
	}

	// RBAR reads back the region selected by RNR
	r.Index = i

	return r.String()
}

func mpuCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if CPU == nil {
		return "", errors.New("unavailable")
	}

	n := CPU.Regions()

	if len(arg) == 0 {
		var buf bytes.Buffer

		for i := 0; i < n; i++ {
			fmt.Fprintln(&buf, readRegion(i))
		}

		return buf.String(), nil
	}

	i, err := strconv.ParseUint(arg[0], 10, 8)

	if err != nil {
		return "", fmt.Errorf("invalid index, %v", err)
	}

	if int(i) >= n {
		return "", fmt.Errorf("invalid index, %d regions available", n)
	}

	rbar, rasr := CPU.ReadRegion(int(i))

	return fmt.Sprintf("%s\nRBAR:%#.8x RASR:%#.8x", readRegion(int(i)), rbar, rasr), nil
}

func cacheCmd(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	if CPU == nil {
		return "", errors.New("unavailable")
	}

	ctrl := CPU.Control()

	buf.WriteString("| unit       | enabled |\n")
	buf.WriteString("|------------|---------|\n")

	fmt.Fprintf(&buf, "| I-cache    |   %5v |\n", CPU.ICacheEnabled())
	fmt.Fprintf(&buf, "| D-cache    |   %5v |\n", CPU.DCacheEnabled())
	fmt.Fprintf(&buf, "| MPU        |       %d |\n", bits.Get(&ctrl, mpu.CTRL_ENABLE, 1))
	fmt.Fprintf(&buf, "| HFNMIENA   |       %d |\n", bits.Get(&ctrl, mpu.CTRL_HFNMIENA, 1))
	fmt.Fprintf(&buf, "| PRIVDEFENA |       %d |\n", bits.Get(&ctrl, mpu.CTRL_PRIVDEFENA, 1))

	return buf.String(), nil
}
