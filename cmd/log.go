// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"sync"

	"golang.org/x/term"
)

const outputLimit = 1024
const flushChr = 0x0a // \n

// termLog buffers log output and writes it, highlighted, to the console
// terminal one line at a time so that it does not break the prompt.
type termLog struct {
	sync.Mutex

	t   *term.Terminal
	buf bytes.Buffer
}

func (l *termLog) Write(p []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	for _, c := range p {
		l.buf.WriteByte(c)

		if c == flushChr || l.buf.Len() > outputLimit {
			l.flush()
		}
	}

	return len(p), nil
}

func (l *termLog) flush() {
	var out []byte

	out = append(out, l.t.Escape.Green...)
	out = append(out, l.buf.Bytes()...)
	out = append(out, l.t.Escape.Reset...)

	_, _ = l.t.Write(out)
	l.buf.Reset()
}
