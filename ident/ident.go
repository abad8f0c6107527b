/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package ident converts 128-bit tryout identifiers to and from their base-62 text form.
//
// The alphabet is 0-9, a-z, A-Z, in that order, so "a" is 10 and "Z" is 61.
package ident

import (
	"errors"
	"math/big"

	"github.com/google/uuid"
)

// Size is the length of an identifier in bytes.
const Size = 16

// ErrInvalidID is returned when text is not a base-62 encoded 128-bit value.
var ErrInvalidID = errors.New("invalid base-62 identifier")

// ID is a 128-bit tryout identifier, stored big-endian.
type ID uuid.UUID

// New returns a random identifier.
func New() ID {
	return ID(uuid.New())
}

// FromBytes creates an identifier from its 16-byte big-endian form.
func FromBytes(b []byte) (ID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return ID{}, ErrInvalidID
	}
	return ID(u), nil
}

// Parse decodes the base-62 text form of an identifier.
func Parse(s string) (ID, error) {
	if s == "" {
		return ID{}, ErrInvalidID
	}
	// big.Int accepts a sign prefix, so the alphabet is checked by hand first.
	for i := 0; i < len(s); i++ {
		if !isDigit62(s[i]) {
			return ID{}, ErrInvalidID
		}
	}
	n, ok := new(big.Int).SetString(s, 62)
	if !ok || n.BitLen() > Size*8 {
		return ID{}, ErrInvalidID
	}
	var id ID
	n.FillBytes(id[:])
	return id, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the base-62 text form of the identifier without leading zeros.
func (id ID) String() string {
	return new(big.Int).SetBytes(id[:]).Text(62)
}

// Bytes returns a copy of the 16-byte big-endian form of the identifier.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// UUID returns the identifier as a UUID.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func isDigit62(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
