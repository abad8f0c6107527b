/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/tryoutd/tryoutd/core"
)

// Profiler writes the CPU, heap and block profiles requested on the command line.
type Profiler struct {
	config  *TryoutdConfig
	cpuFile *os.File
	block   *pprof.Profile
}

func NewProfiler(config *TryoutdConfig) *Profiler {
	return &Profiler{config: config}
}

func (p *Profiler) String() string {
	return "Profiler"
}

func (p *Profiler) Start() (err error) {
	if p.config.CpuProfile != "" {
		p.cpuFile, err = os.Create(p.config.CpuProfile)
		if err != nil {
			return err
		}

		core.LogInfo(p, "Profiling CPU - outputting to ", p.config.CpuProfile)
		if err = pprof.StartCPUProfile(p.cpuFile); err != nil {
			p.cpuFile.Close()
			p.cpuFile = nil
			return err
		}
	}

	if p.config.BlockProfile != "" {
		core.LogInfo(p, "Profiling blocking operations - outputting to ", p.config.BlockProfile)
		runtime.SetBlockProfileRate(1)
		p.block = pprof.Lookup("block")
	}

	return nil
}

func (p *Profiler) Stop() {
	if p.block != nil {
		blockProfileFile, err := os.Create(p.config.BlockProfile)
		if err != nil {
			core.LogError(p, "Unable to open output file for block profile: ", err)
		} else {
			if err := p.block.WriteTo(blockProfileFile, 0); err != nil {
				core.LogError(p, "Unable to write block profile: ", err)
			}
			blockProfileFile.Close()
		}
		runtime.SetBlockProfileRate(0)
		p.block = nil
	}

	if p.config.MemProfile != "" {
		memProfileFile, err := os.Create(p.config.MemProfile)
		if err != nil {
			core.LogError(p, "Unable to open output file for memory profile: ", err)
		} else {
			core.LogInfo(p, "Profiling memory - outputting to ", p.config.MemProfile)
			runtime.GC()
			if err := pprof.WriteHeapProfile(memProfileFile); err != nil {
				core.LogError(p, "Unable to write memory profile: ", err)
			}
			memProfileFile.Close()
		}
	}

	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}
}
