// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/imxrt-boot/led"
)

// LED is the LED state driven by the led command.
var LED *led.State

func init() {
	Add(Cmd{
		Name:    "led",
		Args:    2,
		Pattern: regexp.MustCompile(`^led (\d+) (on|off|toggle)$`),
		Syntax:  "<channel> <on|off|toggle>",
		Help:    "LED control",
		Fn:      ledCmd,
	})
}

func ledCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if LED == nil {
		return "", errors.New("unavailable")
	}

	n, err := strconv.ParseUint(arg[0], 10, 8)

	if err != nil {
		return "", fmt.Errorf("invalid channel, %v", err)
	}

	ch := led.Channel(n)

	switch arg[1] {
	case "on":
		LED.Set(ch)
	case "off":
		LED.Clear(ch)
	case "toggle":
		LED.Toggle(ch)
	}

	state := "off"

	if LED.On(ch) {
		state = "on"
	}

	return fmt.Sprintf("LED %d is %s", ch, state), nil
}
