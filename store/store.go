/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package store persists encoded tryouts as opaque blobs keyed by identifier.
package store

import (
	"errors"
	"fmt"

	"github.com/tryoutd/tryoutd/ident"
)

// Store errors.
var (
	ErrNotFound       = errors.New("tryout not found")
	ErrLocked         = errors.New("store is locked by another process")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Store holds the encoded form of every tryout. Put always replaces the whole
// stored image of an identifier.
type Store interface {
	// Get returns the stored bytes, or ErrNotFound.
	Get(id ident.ID) ([]byte, error)
	// Put stores wire as the complete image of id.
	Put(id ident.ID, wire []byte) error
	// Remove deletes id. Removing a missing id is not an error.
	Remove(id ident.ID) error
	// List returns every stored identifier, in no particular order.
	List() ([]ident.ID, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFS     = "fs"
	BackendBolt   = "bolt"
	BackendSqlite = "sqlite"
)

// Open opens a store of the named backend at path.
func Open(backend string, path string) (Store, error) {
	switch backend {
	case BackendFS:
		return NewFileStore(path)
	case BackendBolt:
		return NewBoltStore(path)
	case BackendSqlite:
		return NewSqliteStore(path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
