/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"fmt"
	"time"

	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/store"
	"github.com/tryoutd/tryoutd/web"
)

// TryoutdConfig is the command line configuration of Tryoutd.
type TryoutdConfig struct {
	Version        string
	BuildTime      string
	ConfigFileName string
	LogFile        string
	CpuProfile     string
	MemProfile     string
	BlockProfile   string
}

// Tryoutd is the wrapper class for the tryout authoring daemon.
// Note: only one instance of this class should be created.
type Tryoutd struct {
	config   *TryoutdConfig
	profiler *Profiler

	store  store.Store
	server *web.Server
}

// NewTryoutd creates a Tryoutd. Don't call this function twice.
func NewTryoutd(config *TryoutdConfig) *Tryoutd {
	// Provide metadata to other threads.
	core.Version = config.Version
	core.BuildTime = config.BuildTime
	core.StartTimestamp = time.Now()

	if config.ConfigFileName != "" {
		core.LoadConfig(config.ConfigFileName)
	}
	core.InitializeLogger(config.LogFile)

	return &Tryoutd{
		config:   config,
		profiler: NewProfiler(config),
	}
}

func (d *Tryoutd) String() string {
	return "Main"
}

// Start opens the store and starts serving. This function is non-blocking.
func (d *Tryoutd) Start() error {
	core.LogInfo(d, "Starting Tryoutd ", core.Version, " (built ", core.BuildTime, ")")

	if err := d.profiler.Start(); err != nil {
		return fmt.Errorf("unable to start profiler: %w", err)
	}

	storeCfg := store.LoadConfig()
	st, err := storeCfg.Open()
	if err != nil {
		d.profiler.Stop()
		return fmt.Errorf("unable to open %s: %w", storeCfg, err)
	}
	d.store = st
	core.LogInfo(d, "Opened ", storeCfg)

	d.server = web.NewServer(web.LoadServerConfig(), d.store)
	go d.server.Run()
	return nil
}

// Stop shuts down Tryoutd.
func (d *Tryoutd) Stop() {
	core.LogInfo(d, "Tryoutd shutting down after ", time.Since(core.StartTimestamp).Round(time.Second), " ...")

	if d.server != nil {
		d.server.Close()
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			core.LogWarn(d, "Unable to close store: ", err)
		}
	}

	d.profiler.Stop()
	core.ShutdownLogger()
}
