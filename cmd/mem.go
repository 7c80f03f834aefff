// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"
)

const maxWords = 1024

func init() {
	Add(Cmd{
		Name:    "peek",
		Args:    2,
		Pattern: regexp.MustCompile(`^peek ([[:xdigit:]]+) (\d+)$`),
		Syntax:  "<hex addr> <words>",
		Help:    "memory display (use with caution)",
		Fn:      memReadCmd,
	})
}

func memReadCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if CPU == nil {
		return "", errors.New("unavailable")
	}

	addr, err := strconv.ParseUint(arg[0], 16, 32)

	if err != nil {
		return "", fmt.Errorf("invalid address, %v", err)
	}

	n, err := strconv.ParseUint(arg[1], 10, 32)

	if err != nil {
		return "", fmt.Errorf("invalid size, %v", err)
	}

	if (addr % 4) != 0 {
		return "", fmt.Errorf("only 32-bit aligned accesses are supported")
	}

	if n > maxWords || addr+n*4 > 1<<32 {
		return "", fmt.Errorf("size argument must be <= %d words within the address space", maxWords)
	}

	buf := make([]byte, n*4)

	for i := uint64(0); i < n; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], CPU.Bus.Read(uint32(addr+i*4)))
	}

	return hex.Dump(buf), nil
}
