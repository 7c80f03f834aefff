// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// mpudump prints the MPU region table programmed at boot for a given board
// configuration, along with the resulting register words.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"

	"github.com/usbarmory/imxrt-boot/board/rt1160evk"
	"github.com/usbarmory/imxrt-boot/mem"
	"github.com/usbarmory/imxrt-boot/util"
)

const usage = `usage: mpudump [-xip] [-sdram] [-wt] [-elf FILE] [-start ADDR] [-end ADDR]

  -xip     map FlexSPI1 flash for execute-in-place
  -sdram   map SEMC SDRAM
  -wt      write-through cache policy for OCRAM and SDRAM
  -elf     read the non-cache segment bounds from the image linker symbols
  -start   non-cache segment start address
  -end     non-cache segment end address`

const (
	nonCacheStartSym = "__NonCache_segment_start__"
	nonCacheEndSym   = "__NonCache_segment_end__"
)

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func parseAddr(s string) (uint32, error) {
	addr, err := strconv.ParseUint(s, 0, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}

	return uint32(addr), nil
}

func run(args []string, w io.Writer) (err error) {
	flag, args := flags.New(args, "-xip", "-sdram", "-wt", "-h", "--help")
	parm, args := parms.New(args, "-elf", "-start", "-end")

	if flag.ByName["-h"] || flag.ByName["--help"] {
		fmt.Fprintln(w, usage)
		return
	}

	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected\n%s", args, usage)
	}

	cfg := rt1160evk.Config{
		XIPExternalFlash: flag.ByName["-xip"],
		SDRAM:            flag.ByName["-sdram"],
		WriteThrough:     flag.ByName["-wt"],
		ICache:           true,
		DCache:           true,
	}

	start := uint32(mem.NonCacheStart)
	end := uint32(mem.NonCacheStart + mem.NonCacheSize)

	if path := parm.ByName["-elf"]; len(path) > 0 {
		buf, err := os.ReadFile(path)

		if err != nil {
			return err
		}

		if start, end, err = util.SegmentBounds(buf, nonCacheStartSym, nonCacheEndSym); err != nil {
			return fmt.Errorf("%s, %w", path, err)
		}
	}

	if s := parm.ByName["-start"]; len(s) > 0 {
		if start, err = parseAddr(s); err != nil {
			return
		}
	}

	if s := parm.ByName["-end"]; len(s) > 0 {
		if end, err = parseAddr(s); err != nil {
			return
		}
	}

	t, err := rt1160evk.Regions(cfg, start, end)

	if err != nil {
		return
	}

	for _, r := range t {
		fmt.Fprintf(w, "%s RBAR:%#.8x RASR:%#.8x\n", r, r.RBAR(), r.RASR())
	}

	return
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("mpudump: %v", err)
	}
}
