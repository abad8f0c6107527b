/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tryoutd/tryoutd/chunk"
	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/utils/comparison"
)

const maxPreview = 48

type Chunks struct {
	args []string
}

func RunChunks(args []string) {
	(&Chunks{args: args}).run()
}

func (c *Chunks) String() string {
	return "Chunks"
}

func (c *Chunks) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <file>\n", c.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Prints the chunk tree of an encoded file.\n")
	fmt.Fprintf(os.Stderr, "Payloads that parse as chunk sequences are expanded.\n")
}

func (c *Chunks) run() {
	if len(c.args) != 2 {
		c.usage()
		os.Exit(3)
	}

	chunks, err := readChunks(c.args[1])
	if err != nil {
		core.LogFatal(c, "Unable to read chunks: ", err)
	}
	writeChunkTree(os.Stdout, chunks, 0)
}

// writeChunkTree prints one line per chunk, indented by nesting depth.
func writeChunkTree(w io.Writer, chunks chunk.Chunks, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range chunks {
		fmt.Fprintf(w, "%stype=%d size=%d", indent, c.Type(), c.Size())

		// the format carries no marker for nesting, so any payload that
		// decodes cleanly into chunks is shown as a subtree
		if inner, err := c.Parse(); err == nil && len(inner) > 0 && !isText(c.Value()) {
			fmt.Fprintln(w)
			writeChunkTree(w, inner, depth+1)
			continue
		}
		fmt.Fprintf(w, " %s\n", preview(c.Value()))
	}
}

func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}

func preview(b []byte) string {
	suffix := ""
	if len(b) > maxPreview {
		suffix = "..."
	}
	head := b[:comparison.Min(len(b), maxPreview)]
	if isText(b) {
		return fmt.Sprintf("%q%s", head, suffix)
	}
	return fmt.Sprintf("0x%x%s", head, suffix)
}
