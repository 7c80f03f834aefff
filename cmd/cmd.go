// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the boot monitor command console.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"text/tabwriter"

	"golang.org/x/term"
)

// Banner is printed when a console session starts.
var Banner string

const prompt = "> "

// CmdFn represents a command handler.
type CmdFn func(term *term.Terminal, arg []string) (res string, err error)

// Cmd represents a console command.
type Cmd struct {
	// Name is the command keyword, as shown in help.
	Name string
	// Args is the number of arguments captured by Pattern.
	Args int
	// Pattern matches the command line, its submatches are the command
	// arguments. It defaults to the exact Name.
	Pattern *regexp.Regexp
	// Syntax describes the arguments.
	Syntax string
	// Help is the command description.
	Help string
	// Fn is the command handler.
	Fn CmdFn
}

var cmds = make(map[string]*Cmd)

// Add registers a command.
func Add(cmd Cmd) {
	if cmd.Pattern == nil {
		cmd.Pattern = regexp.MustCompile(`^` + regexp.QuoteMeta(cmd.Name) + `$`)
	}

	cmds[cmd.Name] = &cmd
}

// Help returns the list of registered commands.
func Help(term *term.Terminal) string {
	var help bytes.Buffer
	var names []string

	t := tabwriter.NewWriter(&help, 16, 8, 0, '\t', tabwriter.TabIndent)

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		_, _ = fmt.Fprintf(t, "%s\t%s\t # %s\n", cmds[name].Name, cmds[name].Syntax, cmds[name].Help)
	}

	_ = t.Flush()

	if term == nil {
		return help.String()
	}

	return string(term.Escape.Cyan) + help.String() + string(term.Escape.Reset)
}

func lookup(line string) (cmd *Cmd, arg []string) {
	for _, c := range cmds {
		m := c.Pattern.FindStringSubmatch(line)

		if len(m) == 0 || len(m)-1 != c.Args {
			continue
		}

		return c, m[1:]
	}

	return
}

// Handle executes a command line, writing its output to the terminal.
func Handle(term *term.Terminal, line string) (err error) {
	cmd, arg := lookup(line)

	if cmd == nil {
		return errors.New("unknown command, type `help`")
	}

	res, err := cmd.Fn(term, arg)

	if len(res) > 0 {
		_, _ = fmt.Fprintln(term, res)
	}

	return
}

// SerialConsole runs a command console over rw until the session is closed.
func SerialConsole(rw io.ReadWriter) {
	t := term.NewTerminal(rw, "")
	t.SetPrompt(string(t.Escape.Red) + prompt + string(t.Escape.Reset))

	stdout := log.Writer()
	log.SetOutput(&termLog{t: t})
	defer log.SetOutput(stdout)

	fmt.Fprintf(t, "%s\n\n", Banner)
	fmt.Fprintf(t, "%s\n", Help(t))

	for {
		line, err := t.ReadLine()

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Printf("readline error, %v", err)
			continue
		}

		if err = Handle(t, line); err == io.EOF {
			break
		}

		if err != nil {
			fmt.Fprintf(t, "error: %v\n", err)
		}
	}

	log.Printf("closing console")
}
