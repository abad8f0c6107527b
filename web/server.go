/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package web serves the tryout authoring pages and upload endpoints.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/ident"
	"github.com/tryoutd/tryoutd/store"
	"github.com/tryoutd/tryoutd/tryout"
)

var errInvalidTryout = errors.New("invalid tryout")

// Server handles tryout submissions and serves stored tryouts.
type Server struct {
	cfg      ServerConfig
	store    store.Store
	server   http.Server
	upgrader websocket.Upgrader
}

// NewServer creates a server backed by the given store.
func NewServer(cfg ServerConfig, st store.Store) *Server {
	s := &Server{
		cfg:   cfg,
		store: st,
	}
	s.server = http.Server{
		Addr:              cfg.URL().Host,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.upgrader = websocket.Upgrader{
		WriteBufferPool: &sync.Pool{},
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) String() string {
	return "WebServer, URL=" + s.cfg.URL().String()
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	if s.cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /{$}", s.handleIndex)
	}
	mux.HandleFunc("POST /tryout", s.handleSubmit)
	mux.HandleFunc("GET /tryout/{id}", s.handleShow)
	mux.HandleFunc("GET /tryout/{id}/raw", s.handleRaw)
	mux.HandleFunc("DELETE /tryout/{id}", s.handleDelete)
	if s.cfg.WebSocketEnabled {
		mux.HandleFunc("GET /ws", s.handleWebSocket)
	}
	return mux
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run listens and serves until Close is called.
func (s *Server) Run() {
	core.LogInfo(s, "Starting ", s.cfg)
	err := s.server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		core.LogFatal(s, "Unable to start listener: ", err)
	}
}

// Close stops the server, waiting for in-flight requests.
func (s *Server) Close() {
	core.LogInfo(s, "Stopping listener")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		core.LogWarn(s, "Unclean shutdown: ", err)
	}
}

// save assigns an identifier if the tryout has none, then stores its full encoding.
func (s *Server) save(t *tryout.Tryout) (ident.ID, error) {
	if t.ID == nil {
		id := ident.New()
		t.ID = &id
	}
	wire, err := t.Bytes()
	if err != nil {
		return ident.ID{}, fmt.Errorf("%w: %w", errInvalidTryout, err)
	}
	if err := s.store.Put(*t.ID, wire); err != nil {
		return ident.ID{}, err
	}
	core.LogDebug(s, "Stored tryout ", t.ID, " (", len(wire), " bytes)")
	return *t.ID, nil
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range s.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
