/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package web

import (
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/tryoutd/tryoutd/core"
	"github.com/tryoutd/tryoutd/form"
	"github.com/tryoutd/tryoutd/ident"
	"github.com/tryoutd/tryoutd/store"
	"github.com/tryoutd/tryoutd/tryout"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List()
	if err != nil {
		core.LogError(s, "Unable to list tryouts: ", err)
		http.Error(w, "unable to list tryouts", http.StatusInternalServerError)
		return
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	sort.Strings(names)
	render(s, w, "index.html", names)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "submission too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "unable to read submission", http.StatusBadRequest)
		return
	}

	fields, err := form.ParseURLEncoded(string(body))
	if err != nil {
		core.LogDebug(s, "Rejected submission: ", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t, err := tryout.FromForm(fields)
	if err != nil {
		core.LogDebug(s, "Rejected submission: ", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.save(t)
	if errors.Is(err, errInvalidTryout) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		core.LogError(s, "Unable to store tryout: ", err)
		http.Error(w, "unable to store tryout", http.StatusInternalServerError)
		return
	}
	core.LogInfo(s, "Saved tryout ", id, " with ", len(t.Questions), " questions")
	http.Redirect(w, r, "/tryout/"+id.String(), http.StatusSeeOther)
}

// load fetches the stored image named by the request path, replying with an
// error status and returning false on failure.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (ident.ID, []byte, bool) {
	id, err := ident.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid tryout id", http.StatusBadRequest)
		return ident.ID{}, nil, false
	}
	wire, err := s.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return id, nil, false
	} else if err != nil {
		core.LogError(s, "Unable to load tryout ", id, ": ", err)
		http.Error(w, "unable to load tryout", http.StatusInternalServerError)
		return id, nil, false
	}
	return id, wire, true
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	id, wire, ok := s.load(w, r)
	if !ok {
		return
	}
	t, err := tryout.DecodeBytes(wire)
	if err != nil {
		core.LogError(s, "Stored tryout ", id, " is corrupt: ", err)
		http.Error(w, "stored tryout is corrupt", http.StatusInternalServerError)
		return
	}
	render(s, w, "tryout.html", t)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	_, wire, ok := s.load(w, r)
	if !ok {
		return
	}
	if etag := contentETag(wire); etag != "" {
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(wire)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := ident.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid tryout id", http.StatusBadRequest)
		return
	}
	if err := s.store.Remove(id); err != nil {
		core.LogError(s, "Unable to remove tryout ", id, ": ", err)
		http.Error(w, "unable to remove tryout", http.StatusInternalServerError)
		return
	}
	core.LogInfo(s, "Removed tryout ", id)
	w.WriteHeader(http.StatusNoContent)
}
