/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tryoutd/tryoutd/core"
)

func TestLoadServerConfig(t *testing.T) {
	t.Cleanup(func() { core.LoadConfigString("") })

	require.NoError(t, core.LoadConfigString(""))
	cfg := LoadServerConfig()
	assert.Equal(t, ServerConfig{
		Bind:             "127.0.0.1",
		Port:             12345,
		MaxBodySize:      1 << 20,
		WebSocketEnabled: true,
	}, cfg)

	require.NoError(t, core.LoadConfigString(`
[web]
bind = "::1"
port = 8080
static_dir = "/srv/www"
max_body_size = 1

[web.websocket]
enabled = false
allowed_origins = ["http://quiz.example"]
`))
	cfg = LoadServerConfig()
	assert.Equal(t, "::1", cfg.Bind)
	assert.Equal(t, uint16(8080), cfg.Port)
	assert.Equal(t, "/srv/www", cfg.StaticDir)
	assert.Equal(t, int64(minBodySize), cfg.MaxBodySize)
	assert.False(t, cfg.WebSocketEnabled)
	assert.Equal(t, []string{"http://quiz.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "http://[::1]:8080", cfg.URL().String())
	assert.Equal(t, "web server at http://[::1]:8080 serving /srv/www", cfg.String())
}
