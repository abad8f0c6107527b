/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/form"
	"github.com/tryoutd/tryoutd/ident"
	"github.com/tryoutd/tryoutd/tryout"
)

type Form struct {
	args []string
}

func RunForm(args []string) {
	(&Form{args: args}).run()
}

func (f *Form) String() string {
	return "Form"
}

func (f *Form) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <body-file> <out-file>\n", f.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Reconstructs a tryout from a URL-encoded form body and writes its encoding.\n")
	fmt.Fprintf(os.Stderr, "A new identifier is assigned if the form carries none.\n")
	fmt.Fprintf(os.Stderr, "The identifier is printed to stdout on success.\n")
}

func (f *Form) run() {
	if len(f.args) != 3 {
		f.usage()
		os.Exit(3)
	}

	body, err := os.ReadFile(f.args[1])
	if err != nil {
		core.LogFatal(f, "Unable to read form body: ", err)
	}
	wire, id, err := encodeForm(string(body))
	if err != nil {
		core.LogFatal(f, "Invalid form body: ", err)
	}
	if err := os.WriteFile(f.args[2], wire, 0o644); err != nil {
		core.LogFatal(f, "Unable to write tryout: ", err)
	}
	fmt.Println(id)
}

// encodeForm reconstructs and encodes the tryout submitted in body.
func encodeForm(body string) ([]byte, ident.ID, error) {
	fields, err := form.ParseURLEncoded(strings.TrimRight(body, "\r\n"))
	if err != nil {
		return nil, ident.ID{}, err
	}
	t, err := tryout.FromForm(fields)
	if err != nil {
		return nil, ident.ID{}, err
	}
	if t.ID == nil {
		id := ident.New()
		t.ID = &id
	}
	wire, err := t.Bytes()
	if err != nil {
		return nil, ident.ID{}, err
	}
	return wire, *t.ID, nil
}
