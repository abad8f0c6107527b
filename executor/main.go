/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tryoutd/tryoutd/core"
)

// Version and BuildTime of Tryoutd, set at build time with -ldflags -X.
var (
	Version   string
	BuildTime string
)

// Main parses the command line, starts the daemon and blocks until a
// termination signal arrives.
func Main(args []string) {
	config := &TryoutdConfig{Version: Version, BuildTime: BuildTime}

	flagset := flag.NewFlagSet("tryoutd", flag.ExitOnError)
	flagset.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", args[0])
		flagset.PrintDefaults()
	}

	var printVersion bool
	flagset.BoolVar(&printVersion, "version", false, "Print version and exit")
	flagset.BoolVar(&printVersion, "V", false, "Print version and exit (short)")
	flagset.StringVar(&config.ConfigFileName, "config", "", "Configuration file location")
	flagset.StringVar(&config.LogFile, "log-file", "", "Write logs to the specified file instead of stdout")
	flagset.StringVar(&config.CpuProfile, "cpu-profile", "", "Enable CPU profiling (output to specified file)")
	flagset.StringVar(&config.MemProfile, "mem-profile", "", "Enable memory profiling (output to specified file)")
	flagset.StringVar(&config.BlockProfile, "block-profile", "", "Enable block profiling (output to specified file)")

	flagset.Parse(args[1:])

	if printVersion {
		fmt.Fprintln(os.Stderr, "Tryoutd: Tryout quiz authoring daemon")
		fmt.Fprintln(os.Stderr, "Version: ", Version, "(Built "+BuildTime+")")
		fmt.Fprintln(os.Stderr, "Copyright (C) 2024 The Tryoutd Authors")
		fmt.Fprintln(os.Stderr, "Released under the terms of the MIT License")
		return
	}

	tryoutd := NewTryoutd(config)
	if err := tryoutd.Start(); err != nil {
		core.LogFatal("Main", err)
	}

	// set up signal handler channel and wait for interrupt
	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-sigChannel
	core.LogInfo("Main", "Received signal ", receivedSig, " - exiting")

	tryoutd.Stop()
}
