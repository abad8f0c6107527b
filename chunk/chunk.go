/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package chunk

import (
	"encoding/binary"
	"math"
)

// HeaderSize is the size of the size and type fields that precede every payload.
const HeaderSize = 8

// MaxPayloadSize is the exclusive upper bound on the payload size of a chunk.
const MaxPayloadSize = math.MaxUint32 - HeaderSize

// Chunk contains a single type-tagged payload.
type Chunk struct {
	tlvType uint32
	value   []byte
}

///////////////
// Constructors
///////////////

// checkSize reports whether a payload of n bytes fits in a chunk.
func checkSize(n uint64) error {
	if n >= MaxPayloadSize {
		return ErrChunkTooLarge
	}
	return nil
}

// New creates a chunk containing a copy of the specified value.
func New(tlvType uint32, value []byte) (*Chunk, error) {
	if err := checkSize(uint64(len(value))); err != nil {
		return nil, err
	}
	c := new(Chunk)
	c.tlvType = tlvType
	c.value = make([]byte, len(value))
	copy(c.value, value)
	return c, nil
}

// NewString creates a chunk whose value is the UTF-8 encoding of s.
func NewString(tlvType uint32, s string) (*Chunk, error) {
	return New(tlvType, []byte(s))
}

// NewNested creates a chunk whose value is the wire encoding of the specified chunks.
func NewNested(tlvType uint32, chunks Chunks) (*Chunk, error) {
	if err := checkSize(uint64(chunks.Size())); err != nil {
		return nil, err
	}
	return &Chunk{tlvType: tlvType, value: chunks.Wire()}, nil
}

//////////
// Getters
//////////

// Type returns the type tag of the chunk.
func (c *Chunk) Type() uint32 {
	return c.tlvType
}

// Value returns the payload of the chunk. The returned slice must not be modified.
func (c *Chunk) Value() []byte {
	return c.value
}

// String returns the payload interpreted as text.
func (c *Chunk) String() string {
	return string(c.value)
}

// Size returns the size of the payload.
func (c *Chunk) Size() uint32 {
	return uint32(len(c.value))
}

// WireSize returns the size of the encoded chunk, header included.
func (c *Chunk) WireSize() int {
	return HeaderSize + len(c.value)
}

// Parse decodes the payload as a nested chunk sequence.
func (c *Chunk) Parse() (Chunks, error) {
	return Decode(c.value)
}

////////////////////
// Encoding/Decoding
////////////////////

// EncodeInto writes the wire encoding of the chunk into buf and returns the number of bytes written.
// buf must be at least WireSize() bytes long.
func (c *Chunk) EncodeInto(buf []byte) int {
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(c.value)))
	binary.BigEndian.PutUint32(buf[4:8], c.tlvType)
	return HeaderSize + copy(buf[HeaderSize:], c.value)
}

// Wire returns the wire-encoded chunk.
func (c *Chunk) Wire() []byte {
	wire := make([]byte, c.WireSize())
	c.EncodeInto(wire)
	return wire
}

// DecodeChunk decodes a single chunk from the start of wire and returns it along with the number of bytes consumed.
func DecodeChunk(wire []byte) (*Chunk, int, error) {
	if len(wire) < HeaderSize {
		return nil, 0, ErrUnexpectedEOF
	}
	size := binary.BigEndian.Uint32(wire[0:4])
	tlvType := binary.BigEndian.Uint32(wire[4:8])

	if uint64(len(wire)-HeaderSize) < uint64(size) {
		return nil, 0, ErrTruncatedPayload
	}
	c := new(Chunk)
	c.tlvType = tlvType
	c.value = make([]byte, size)
	copy(c.value, wire[HeaderSize:HeaderSize+int(size)])
	return c, HeaderSize + int(size), nil
}
