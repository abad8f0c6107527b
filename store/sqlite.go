/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tryoutd/tryoutd/ident"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS tryouts (
	id   BLOB PRIMARY KEY,
	wire BLOB NOT NULL
)`

// SqliteStore keeps every tryout as a row of a sqlite database.
type SqliteStore struct {
	db   *sql.DB
	path string
}

var _ Store = &SqliteStore{}

// NewSqliteStore opens or creates a sqlite database at path.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		sqliteSchema,
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply sqlite statement %q: %w", stmt, err)
		}
	}
	return &SqliteStore{db: db, path: path}, nil
}

func (s *SqliteStore) String() string {
	return "SqliteStore, Path=" + s.path
}

// Get returns the stored image of id.
func (s *SqliteStore) Get(id ident.ID) ([]byte, error) {
	var wire []byte
	err := s.db.QueryRow("SELECT wire FROM tryouts WHERE id=?", id.Bytes()).Scan(&wire)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return wire, err
}

// Put replaces the stored image of id.
func (s *SqliteStore) Put(id ident.ID, wire []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO tryouts (id, wire) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET wire=excluded.wire",
		id.Bytes(), wire)
	return err
}

// Remove deletes the stored image of id.
func (s *SqliteStore) Remove(id ident.ID) error {
	_, err := s.db.Exec("DELETE FROM tryouts WHERE id=?", id.Bytes())
	return err
}

// List returns every stored identifier.
func (s *SqliteStore) List() ([]ident.ID, error) {
	rows, err := s.db.Query("SELECT id FROM tryouts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []ident.ID
	for rows.Next() {
		var key []byte
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		id, err := ident.FromBytes(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}
