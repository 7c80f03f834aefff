// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/usbarmory/imxrt-boot/armv7m"
	"github.com/usbarmory/imxrt-boot/internal/reg"
	"github.com/usbarmory/imxrt-boot/led"
	"github.com/usbarmory/imxrt-boot/mpu"
)

// mpuBus models the MPU_RNR selection of MPU_RBAR and MPU_RASR.
type mpuBus struct {
	*reg.Recorder

	rbar [mpu.MaxRegions]uint32
	rasr [mpu.MaxRegions]uint32
}

func (b *mpuBus) Read(addr uint32) uint32 {
	rnr := b.Recorder.Read(armv7m.MPU_RNR) & 0xf

	switch addr {
	case armv7m.MPU_RBAR:
		return b.rbar[rnr]
	case armv7m.MPU_RASR:
		return b.rasr[rnr]
	}

	return b.Recorder.Read(addr)
}

func (b *mpuBus) Write(addr uint32, val uint32) {
	switch addr {
	case armv7m.MPU_RBAR:
		if val&(1<<mpu.RBAR_VALID) != 0 {
			b.Recorder.Write(armv7m.MPU_RNR, val&0xf)
		}

		b.rbar[b.Recorder.Read(armv7m.MPU_RNR)&0xf] = val &^ (1 << mpu.RBAR_VALID)
	case armv7m.MPU_RASR:
		b.rasr[b.Recorder.Read(armv7m.MPU_RNR)&0xf] = val
	}

	b.Recorder.Write(addr, val)
}

type session struct {
	io.Reader
	io.Writer
}

func setup(t *testing.T) (*bytes.Buffer, *term.Terminal, *reg.Recorder) {
	bus := &mpuBus{Recorder: reg.NewRecorder()}
	bus.Mem[armv7m.MPU_TYPE] = mpu.MaxRegions << armv7m.TYPE_DREGION

	CPU = &armv7m.CPU{Bus: bus}

	s := &mpu.Sequencer{
		Port:    CPU,
		Control: 1 << mpu.CTRL_PRIVDEFENA,
	}

	require.NoError(t, s.Program(mpu.Table{
		{Index: 0, Base: 0, Size: 1 << 32, ExecDisable: true, AccessPermission: mpu.AP_NONE},
		{Index: 10, Base: 0x202c0000, Size: 0x40000, AccessPermission: mpu.AP_FULL, Attributes: mpu.NormalNonCacheable},
	}))

	leds, err := led.New(bus, []led.Pin{
		{Data: 0x40c64000, Dir: 0x40c64004, Bit: 3},
	})
	require.NoError(t, err)

	leds.Init()
	LED = leds

	out := new(bytes.Buffer)
	term := term.NewTerminal(session{new(bytes.Buffer), out}, "")

	return out, term, bus.Recorder
}

func TestHandle(t *testing.T) {
	out, term, _ := setup(t)

	require.NoError(t, Handle(term, "help"))
	assert.Contains(t, out.String(), "show MPU regions")

	assert.Error(t, Handle(term, "bogus"))
	assert.ErrorIs(t, Handle(term, "quit"), io.EOF)
}

func TestMPUCmd(t *testing.T) {
	assert := assert.New(t)
	out, term, _ := setup(t)

	require.NoError(t, Handle(term, "mpu"))

	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(out.String(), "\r", "")), "\n")
	require.Len(t, lines, mpu.MaxRegions)

	assert.Equal("MPU:00 0x00000000-0xffffffff - none     strongly-ordered", lines[0])
	assert.Equal("MPU:01 disabled", lines[1])
	assert.Equal("MPU:10 0x202c0000-0x202fffff x full     normal non-cacheable", lines[10])

	out.Reset()
	require.NoError(t, Handle(term, "mpu 10"))
	assert.Contains(out.String(), "RBAR:0x202c000a RASR:0x03080023")

	assert.Error(Handle(term, "mpu 16"))
}

func TestInfoCmd(t *testing.T) {
	out, term, _ := setup(t)

	require.NoError(t, Handle(term, "info"))
	assert.Contains(t, out.String(), "MPU regions ..: 16")
	assert.Contains(t, out.String(), "MPU enabled ..: true")
	assert.Contains(t, out.String(), "D-cache ......: false")
}

func TestResetCmd(t *testing.T) {
	out, term, r := setup(t)
	r.Reset()

	require.NoError(t, Handle(term, "reset"))
	assert.Empty(t, out.String())
	assert.Equal(t, []uint32{0x05fa0004}, r.WritesTo(armv7m.SCB_AIRCR))
}

func TestCacheCmd(t *testing.T) {
	out, term, _ := setup(t)

	require.NoError(t, Handle(term, "cache"))
	assert.Contains(t, out.String(), "| MPU        |       1 |")
	assert.Contains(t, out.String(), "| PRIVDEFENA |       1 |")
	assert.Contains(t, out.String(), "| D-cache    |   false |")
}

func TestLEDCmd(t *testing.T) {
	assert := assert.New(t)
	out, term, r := setup(t)
	r.Reset()

	require.NoError(t, Handle(term, "led 0 toggle"))
	assert.Contains(out.String(), "LED 0 is on")
	assert.Equal(uint32(1<<3), r.Read(0x40c64000))

	// invalid channels are ignored
	out.Reset()
	require.NoError(t, Handle(term, "led 5 on"))
	assert.Contains(out.String(), "LED 5 is off")
	assert.Len(r.Writes, 1)
}

func TestPeekCmd(t *testing.T) {
	out, term, r := setup(t)
	r.Mem[0x20000000] = 0x64636261

	require.NoError(t, Handle(term, "peek 20000000 2"))
	assert.Contains(t, out.String(), "61 62 63 64 00 00 00 00")

	assert.Error(t, Handle(term, "peek 20000002 1"))
	assert.Error(t, Handle(term, "peek 20000000 4096"))
}

func TestSerialConsole(t *testing.T) {
	setup(t)

	out := new(bytes.Buffer)
	in := bytes.NewBufferString("led 0 on\rexit\r")

	Banner = "test console"
	SerialConsole(session{in, out})

	assert.Contains(t, out.String(), "test console")
	assert.Contains(t, out.String(), "LED 0 is on")
	assert.True(t, LED.On(0))
}

func TestTermLog(t *testing.T) {
	out := new(bytes.Buffer)
	l := &termLog{t: term.NewTerminal(session{new(bytes.Buffer), out}, "")}

	fmt.Fprint(l, "MPU enabled")
	assert.Empty(t, out.String())

	fmt.Fprint(l, " with 14 regions\npartial")
	assert.Equal(t, "\x1b[32mMPU enabled with 14 regions\r\n\x1b[0m", out.String())
	assert.Equal(t, "partial", l.buf.String())
}
