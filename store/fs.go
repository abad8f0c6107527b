/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/tryoutd/tryoutd/ident"
)

const (
	fileSuffix   = ".tryout"
	lockFileName = ".lock"
)

// FileStore keeps one file per tryout under a root directory.
//
// Files are spread over 256 subdirectories by the xxhash of the identifier.
// Every write goes to a temporary file that is renamed over the old image, so
// readers never observe a partial record.
type FileStore struct {
	root     string
	lockFile *os.File
	// locks maps the text form of an identifier to its *idLock.
	locks *hashmap.HashMap
}

var _ Store = &FileStore{}

// NewFileStore opens or creates a file store rooted at root. The directory is
// locked for the lifetime of the store.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	lockFile, err := lockDir(root)
	if err != nil {
		return nil, err
	}
	return &FileStore{
		root:     root,
		lockFile: lockFile,
		locks:    hashmap.New(64),
	}, nil
}

func (s *FileStore) String() string {
	return "FileStore, Root=" + s.root
}

func (s *FileStore) shardDir(id ident.ID) string {
	return filepath.Join(s.root, fmt.Sprintf("%02x", xxhash.Sum64(id[:])&0xff))
}

func (s *FileStore) path(id ident.ID) string {
	return filepath.Join(s.shardDir(id), id.String()+fileSuffix)
}

// idLock serializes writers of one identifier. An entry lives in the lock
// table only while it is held or waited on.
type idLock struct {
	sync.Mutex
	// released is set, under the mutex, once the entry has left the table.
	released bool
}

// lock acquires the entry for id, retrying when the entry it waited on was
// released in the meantime.
func (s *FileStore) lock(id ident.ID) *idLock {
	key := id.String()
	for {
		actual, _ := s.locks.GetOrInsert(key, &idLock{})
		l := actual.(*idLock)
		l.Lock()
		if !l.released {
			return l
		}
		l.Unlock()
	}
}

// unlock drops the entry of id from the table and releases it.
func (s *FileStore) unlock(id ident.ID, l *idLock) {
	s.locks.Del(id.String())
	l.released = true
	l.Unlock()
}

// Get returns the stored image of id.
func (s *FileStore) Get(id ident.ID) ([]byte, error) {
	wire, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return wire, err
}

// Put atomically replaces the stored image of id.
func (s *FileStore) Put(id ident.ID, wire []byte) error {
	l := s.lock(id)
	defer s.unlock(id, l)

	dir := s.shardDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, id.String()+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(wire); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(id))
}

// Remove deletes the stored image of id.
func (s *FileStore) Remove(id ident.ID) error {
	l := s.lock(id)
	defer s.unlock(id, l)

	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// List returns every identifier with a stored image.
func (s *FileStore) List() ([]ident.ID, error) {
	shards, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}
	var ids []ident.ID
	for _, shard := range shards {
		if !shard.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(s.root, shard.Name()))
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			name, ok := strings.CutSuffix(entry.Name(), fileSuffix)
			if !ok || entry.IsDir() {
				continue
			}
			id, err := ident.Parse(name)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Close releases the directory lock.
func (s *FileStore) Close() error {
	if s.lockFile == nil {
		return nil
	}
	err := unlockDir(s.lockFile)
	s.lockFile = nil
	return err
}
