// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/usbarmory/imxrt-boot/board/rt1160evk"
	"github.com/usbarmory/imxrt-boot/cmd"
)

type console struct {
	io.Reader
	io.Writer
}

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	log.Printf("%s/%s (%s) • i.MX RT1160 Cortex-M7 boot", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func main() {
	defer log.Printf("CM7 says goodbye")

	start, end := nonCacheSegment()

	leds, err := rt1160evk.Init(rt1160evk.CM7, rt1160evk.DefaultConfig(), start, end)

	if err != nil {
		log.Fatalf("CM7 could not initialize board, %v", err)
	}

	leds.Set(rt1160evk.CHANNEL_1)

	cmd.Banner = fmt.Sprintf("%s/%s (%s) • i.MX RT1160 Cortex-M7 boot", runtime.GOOS, runtime.GOARCH, runtime.Version())
	cmd.CPU = rt1160evk.CM7
	cmd.LED = leds

	cmd.SerialConsole(&console{os.Stdin, os.Stdout})
}
