/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
	"golang.org/x/exp/constraints"
)

var config *toml.Tree

// LoadConfig loads the Tryoutd configuration from the specified configuration file.
func LoadConfig(file string) {
	var err error
	config, err = toml.LoadFile(file)
	if err != nil {
		LogFatal("Config", "Unable to load configuration file: ", err)
	}
}

// LoadConfigString loads the Tryoutd configuration from a TOML document.
func LoadConfigString(content string) error {
	tree, err := toml.Load(content)
	if err != nil {
		return err
	}
	config = tree
	return nil
}

func getConfigNumberDefault[T constraints.Integer](key string, def T, min int64, max int64) T {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= min && val <= max {
		return T(val)
	}
	return def
}

// GetConfigInt64Default returns the 64-bit integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigInt64Default(key string, def int64) int64 {
	return getConfigNumberDefault(key, def, math.MinInt64, math.MaxInt64)
}

// GetConfigUint16Default returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigUint16Default(key string, def uint16) uint16 {
	return getConfigNumberDefault(key, def, 1, math.MaxUint16)
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigBoolDefault returns the boolean configuration value at the specified key or the specified default value if it does not exist.
func GetConfigBoolDefault(key string, def bool) bool {
	if config == nil {
		return def
	}
	val, ok := config.Get(key).(bool)
	if ok {
		return val
	}
	return def
}

// GetConfigArrayString returns the configuration array value at the specified key or nil if it does not exist.
func GetConfigArrayString(key string) []string {
	if config == nil {
		return nil
	}
	array := config.GetArray(key)
	if array == nil {
		return nil
	}
	if val, ok := array.([]string); ok {
		return val
	}
	return nil
}
