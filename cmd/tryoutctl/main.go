/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"os"

	"github.com/tryoutd/tryoutd/cmd"
	"github.com/tryoutd/tryoutd/executor"
	"github.com/tryoutd/tryoutd/tools"
)

func main() {
	// create a command tree
	tree := cmd.CmdTree{
		Name: "tryoutctl",
		Help: "Tryout quiz authoring toolkit",
		Sub: []*cmd.CmdTree{{
			Name: "run",
			Help: "Start the tryout authoring daemon",
			Fun:  executor.Main,
		}, {
			// tools separator
		}, {
			Name: "dump",
			Help: "Print an encoded tryout as JSON, YAML, MessagePack or a form body",
			Fun:  tools.RunDump,
		}, {
			Name: "chunks",
			Help: "Print the chunk tree of an encoded file",
			Fun:  tools.RunChunks,
		}, {
			Name: "form",
			Help: "Encode a tryout from a URL-encoded form body",
			Fun:  tools.RunForm,
		}},
	}

	// Parse the command line arguments
	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
