/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"errors"
	"time"

	"github.com/tryoutd/tryoutd/ident"
	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("tryouts")
var errBoltNoBucket = errors.New("no bucket in bolt")

// BoltStore keeps every tryout in a single bbolt bucket.
// The key is the 16-byte identifier and the value is the encoded tryout.
type BoltStore struct {
	db *bolt.DB
}

var _ Store = &BoltStore{}

// NewBoltStore opens or creates a bbolt database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if errors.Is(err, bolt.ErrTimeout) {
		return nil, ErrLocked
	} else if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) String() string {
	return "BoltStore, Path=" + s.db.Path()
}

// Get returns the stored image of id.
func (s *BoltStore) Get(id ident.ID) (wire []byte, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return errBoltNoBucket
		}
		value := bucket.Get(id[:])
		if value == nil {
			return ErrNotFound
		}
		wire = append([]byte{}, value...) // copy
		return nil
	})
	return
}

// Put replaces the stored image of id.
func (s *BoltStore) Put(id ident.ID, wire []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return errBoltNoBucket
		}
		return bucket.Put(id.Bytes(), wire)
	})
}

// Remove deletes the stored image of id.
func (s *BoltStore) Remove(id ident.ID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return errBoltNoBucket
		}
		return bucket.Delete(id[:])
	})
}

// List returns every stored identifier in key order.
func (s *BoltStore) List() (ids []ident.ID, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return errBoltNoBucket
		}
		return bucket.ForEach(func(k, _ []byte) error {
			id, err := ident.FromBytes(k)
			if err != nil {
				return nil
			}
			ids = append(ids, id)
			return nil
		})
	})
	return
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
