// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package util provides host side helpers to inspect boot images.
package util

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
)

// ErrSymbolNotFound is returned when an ELF image lacks the requested symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// LookupSym returns the named symbol from an ELF image.
func LookupSym(buf []byte, name string) (*elf.Symbol, error) {
	exe, err := elf.NewFile(bytes.NewReader(buf))

	if err != nil {
		return nil, err
	}

	syms, err := exe.Symbols()

	if errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("%s, %w (stripped image)", name, ErrSymbolNotFound)
	}

	if err != nil {
		return nil, err
	}

	for _, sym := range syms {
		if sym.Name == name {
			return &sym, nil
		}
	}

	return nil, fmt.Errorf("%s, %w", name, ErrSymbolNotFound)
}

// SegmentBounds returns the values of the linker symbols marking the start
// and end of a memory segment.
func SegmentBounds(buf []byte, startSym string, endSym string) (start uint32, end uint32, err error) {
	s, err := LookupSym(buf, startSym)

	if err != nil {
		return
	}

	e, err := LookupSym(buf, endSym)

	if err != nil {
		return
	}

	if s.Value > 0xffffffff || e.Value > 0xffffffff {
		return 0, 0, fmt.Errorf("segment %s-%s beyond 32-bit address space", startSym, endSym)
	}

	return uint32(s.Value), uint32(e.Value), nil
}
