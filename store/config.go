/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"fmt"

	"github.com/tryoutd/tryoutd/core"
)

// Config selects the backend the daemon stores tryouts in.
type Config struct {
	Backend string
	Path    string
}

// LoadConfig reads the store configuration from the loaded configuration file.
func LoadConfig() Config {
	return Config{
		Backend: core.GetConfigStringDefault("store.backend", BackendFS),
		Path:    core.GetConfigStringDefault("store.path", "tryouts"),
	}
}

// Open opens the configured store.
func (cfg Config) Open() (Store, error) {
	return Open(cfg.Backend, cfg.Path)
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s store at %s", cfg.Backend, cfg.Path)
}
