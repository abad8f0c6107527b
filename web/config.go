/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package web

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/utils/comparison"
)

// Bounds of the configurable body size.
const (
	minBodySize = 1 << 10
	maxBodySize = 1 << 30
)

// ServerConfig contains Server configuration.
type ServerConfig struct {
	Bind      string
	Port      uint16
	StaticDir string
	// MaxBodySize bounds form submissions and WebSocket messages, in bytes.
	MaxBodySize      int64
	WebSocketEnabled bool
	// AllowedOrigins restricts WebSocket upgrades. Empty allows any origin.
	AllowedOrigins []string
}

// LoadServerConfig reads the server configuration from the loaded configuration file.
func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Bind:             core.GetConfigStringDefault("web.bind", "127.0.0.1"),
		Port:             core.GetConfigUint16Default("web.port", 12345),
		StaticDir:        core.GetConfigStringDefault("web.static_dir", ""),
		MaxBodySize:      comparison.Clamp(core.GetConfigInt64Default("web.max_body_size", 1<<20), minBodySize, maxBodySize),
		WebSocketEnabled: core.GetConfigBoolDefault("web.websocket.enabled", true),
		AllowedOrigins:   core.GetConfigArrayString("web.websocket.allowed_origins"),
	}
}

// URL returns the base URL the server listens on.
func (cfg ServerConfig) URL() *url.URL {
	return &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(cfg.Bind, strconv.FormatUint(uint64(cfg.Port), 10)),
	}
}

func (cfg ServerConfig) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "web server at %s", cfg.URL())
	if cfg.StaticDir != "" {
		fmt.Fprintf(&b, " serving %s", cfg.StaticDir)
	}
	if cfg.WebSocketEnabled {
		b.WriteString(" with WebSocket uploads")
	}
	return b.String()
}
