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
	"io"
	"regexp"
	"runtime"
	"runtime/debug"

	"golang.org/x/term"
)

func init() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn:   func(t *term.Terminal, _ []string) (string, error) { return Help(t), nil },
	})

	Add(Cmd{
		Name:    "exit, quit",
		Args:    1,
		Pattern: regexp.MustCompile(`^(exit|quit)$`),
		Help:    "close console",
		Fn:      func(_ *term.Terminal, _ []string) (string, error) { return "logout", io.EOF },
	})

	Add(Cmd{
		Name: "stack",
		Help: "goroutine stack trace",
		Fn:   func(_ *term.Terminal, _ []string) (string, error) { return string(debug.Stack()), nil },
	})

	Add(Cmd{
		Name: "info",
		Help: "runtime and core information",
		Fn:   infoCmd,
	})

	Add(Cmd{
		Name: "reset",
		Help: "system reset",
		Fn:   resetCmd,
	})
}

func infoCmd(_ *term.Terminal, _ []string) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Runtime ......: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&buf, "Goroutines ...: %d\n", runtime.NumGoroutine())

	if CPU == nil {
		return buf.String(), nil
	}

	fmt.Fprintf(&buf, "MPU regions ..: %d\n", CPU.Regions())
	fmt.Fprintf(&buf, "MPU enabled ..: %v\n", CPU.MPUEnabled())
	fmt.Fprintf(&buf, "I-cache ......: %v\n", CPU.ICacheEnabled())
	fmt.Fprintf(&buf, "D-cache ......: %v", CPU.DCacheEnabled())

	return buf.String(), nil
}

func resetCmd(_ *term.Terminal, _ []string) (string, error) {
	if CPU == nil {
		return "", errors.New("unavailable")
	}

	CPU.Reset()

	return "", nil
}
