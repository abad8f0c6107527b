/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"flag"
	"fmt"
	"io"
	"os"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/tryout"
	"github.com/vmihailenco/msgpack/v5"
	yaml "gopkg.in/yaml.v2"
)

// Output formats of the dump command.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatForm    = "form"
)

type Dump struct {
	args    []string
	format  string
	noColor bool
}

func RunDump(args []string) {
	(&Dump{args: args}).run()
}

func (d *Dump) String() string {
	return "Dump"
}

func (d *Dump) usage(flags *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n", d.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Decodes an encoded tryout and prints it to stdout.\n")
	fmt.Fprintf(os.Stderr, "The form format prints a body that the form command and POST /tryout accept.\n")
	fmt.Fprintf(os.Stderr, "\n")
	flags.PrintDefaults()
}

func (d *Dump) run() {
	flags := flag.NewFlagSet(d.args[0], flag.ExitOnError)
	flags.StringVar(&d.format, "format", FormatJSON, "Output format (json, yaml, msgpack or form)")
	flags.BoolVar(&d.noColor, "no-color", false, "Disable colored JSON output")
	flags.Usage = func() { d.usage(flags) }
	flags.Parse(d.args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(3)
	}

	chunks, err := readChunks(flags.Arg(0))
	if err != nil {
		core.LogFatal(d, "Unable to read tryout: ", err)
	}
	t, err := tryout.Decode(chunks)
	if err != nil {
		core.LogFatal(d, "Invalid tryout in ", flags.Arg(0), ": ", err)
	}

	var out io.Writer = os.Stdout
	if d.format == FormatJSON && !d.noColor {
		out = colorable.NewColorableStdout()
	}
	if err := writeTryout(out, t, d.format, !d.noColor); err != nil {
		core.LogFatal(d, "Unable to print tryout: ", err)
	}
}

// writeTryout prints t to w in the given format.
func writeTryout(w io.Writer, t *tryout.Tryout, format string, color bool) error {
	view := newTryoutView(t)

	var out []byte
	var err error
	switch format {
	case FormatJSON:
		f := prettyjson.NewFormatter()
		f.DisabledColor = !color
		out, err = f.Marshal(view)
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(view)
	case FormatMsgpack:
		out, err = msgpack.Marshal(view)
	case FormatForm:
		out = []byte(tryout.ToForm(t).Encode() + "\n")
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
