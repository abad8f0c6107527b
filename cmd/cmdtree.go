/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package cmd dispatches the subcommands of the tryout binaries.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tryoutd/tryoutd/utils/comparison"
)

const banner = `
  _____                       _
 |_   _| __ _   _  ___  _   _| |_
   | || '__| | | |/ _ \| | | | __|
   | || |  | |_| | (_) | |_| | |_
   |_||_|   \__, |\___/ \__,_|\__|
            |___/
`

// CmdTree is one node of the command hierarchy. Leaves run Fun, inner nodes
// select a child by the next argument.
type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

func (c *CmdTree) Usage(args []string) {
	c.printUsage(os.Stderr, args)
	os.Exit(2)
}

func (c *CmdTree) printUsage(w io.Writer, args []string) {
	fmt.Fprintln(w, banner[1:])
	fmt.Fprintf(w, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(w, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		spaces := strings.Repeat(" ", comparison.Max(16-len(sub.Name), 1))
		fmt.Fprintf(w, "  %s%s%s\n", sub.Name, spaces, sub.Help)
	}
	fmt.Fprintln(w)
}

func (c *CmdTree) Execute(args []string) {
	if sub, sargs := c.find(args); sub != nil {
		sub.Execute(sargs)
		return
	}
	if c.Fun != nil {
		c.Fun(args)
		return
	}
	c.Usage(args)
}

// find returns the subcommand named by args[1] together with its arguments,
// or nil if c is a leaf or no subcommand matches.
func (c *CmdTree) find(args []string) (*CmdTree, []string) {
	// leaves take the remaining arguments as-is
	if c.Fun != nil || len(args) <= 1 {
		return nil, nil
	}

	// recursively search for subcommand
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			return sub, append([]string{name}, args[2:]...)
		}
	}

	// command not found
	return nil, nil
}
