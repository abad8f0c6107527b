/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultsWithoutFile(t *testing.T) {
	config = nil
	assert.Equal(t, int64(7), GetConfigInt64Default("web.max_body_size", 7))
	assert.Equal(t, "x", GetConfigStringDefault("store.path", "x"))
	assert.True(t, GetConfigBoolDefault("web.websocket.enabled", true))
	assert.Nil(t, GetConfigArrayString("web.websocket.allowed_origins"))
}

func TestConfigGetters(t *testing.T) {
	t.Cleanup(func() { config = nil })
	require.NoError(t, LoadConfigString(`
[web]
bind = "0.0.0.0"
port = 8080
max_body_size = 4294967296

[web.websocket]
enabled = false
allowed_origins = ["http://a.example", "http://b.example"]

[store]
backend = 3
`))

	assert.Equal(t, "0.0.0.0", GetConfigStringDefault("web.bind", "127.0.0.1"))
	assert.Equal(t, uint16(8080), GetConfigUint16Default("web.port", 1))
	assert.Equal(t, int64(4294967296), GetConfigInt64Default("web.max_body_size", 0))
	assert.False(t, GetConfigBoolDefault("web.websocket.enabled", true))
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, GetConfigArrayString("web.websocket.allowed_origins"))

	// wrong type or out of range falls back to the default
	assert.Equal(t, "fs", GetConfigStringDefault("store.backend", "fs"))
	assert.Equal(t, uint16(9), GetConfigUint16Default("web.max_body_size", 9))
	assert.Equal(t, uint16(1), GetConfigUint16Default("web.bind", 1))
	assert.Equal(t, "", GetConfigStringDefault("web.missing", ""))
}

func TestConfigUint16Range(t *testing.T) {
	t.Cleanup(func() { config = nil })
	require.NoError(t, LoadConfigString("a = 0\nb = 65536\nc = 65535\n"))
	assert.Equal(t, uint16(5), GetConfigUint16Default("a", 5))
	assert.Equal(t, uint16(5), GetConfigUint16Default("b", 5))
	assert.Equal(t, uint16(65535), GetConfigUint16Default("c", 5))
}

func TestLoadConfigStringInvalid(t *testing.T) {
	t.Cleanup(func() { config = nil })
	assert.Error(t, LoadConfigString("[web\nport ="))
}

func TestSampleConfig(t *testing.T) {
	t.Cleanup(func() { config = nil })
	content, err := os.ReadFile("../tryoutd.sample.toml")
	require.NoError(t, err)
	require.NoError(t, LoadConfigString(string(content)))
	assert.Equal(t, "INFO", GetConfigStringDefault("core.log_level", ""))
	assert.Equal(t, uint16(12345), GetConfigUint16Default("web.port", 1))
	assert.Equal(t, "fs", GetConfigStringDefault("store.backend", ""))
	assert.True(t, GetConfigBoolDefault("web.websocket.enabled", false))
}
