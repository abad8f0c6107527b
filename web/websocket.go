/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package web

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/tryout"
)

// handleWebSocket accepts encoded tryouts as binary messages. Each message is
// answered with a text message holding the stored id or "error: <reason>".
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()
	c.SetReadLimit(s.cfg.MaxBodySize)
	core.LogInfo(s, "Accepting new WebSocket client ", c.RemoteAddr())

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				core.LogWarn(s, "Unable to read from socket (", err, ") - closing")
			}
			return
		}
		if mt != websocket.BinaryMessage {
			core.LogWarn(s, "Ignored non-binary message")
			continue
		}

		core.LogTrace(s, "Receive of size ", len(message))
		if err := c.WriteMessage(websocket.TextMessage, []byte(s.storeUpload(message))); err != nil {
			core.LogWarn(s, "Unable to send on socket (", err, ") - closing")
			return
		}
	}
}

func (s *Server) storeUpload(wire []byte) string {
	t, err := tryout.DecodeBytes(wire)
	if err != nil {
		return "error: " + err.Error()
	}
	id, err := s.save(t)
	if err != nil {
		core.LogWarn(s, "Unable to store uploaded tryout: ", err)
		return "error: " + err.Error()
	}
	core.LogInfo(s, "Saved uploaded tryout ", id)
	return id.String()
}
