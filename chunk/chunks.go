/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// readStep bounds how much payload is buffered per read, so a declared size
// never causes a single large allocation ahead of the data actually arriving.
const readStep = 1024

// Chunks is an ordered sequence of chunks.
type Chunks []*Chunk

// Size returns the length of the wire encoding of the sequence.
func (cs Chunks) Size() int {
	size := 0
	for _, c := range cs {
		size += c.WireSize()
	}
	return size
}

// Wire returns the concatenated wire encoding of every chunk in order.
func (cs Chunks) Wire() []byte {
	wire := make([]byte, cs.Size())
	pos := 0
	for _, c := range cs {
		pos += c.EncodeInto(wire[pos:])
	}
	return wire
}

// WriteTo writes the wire encoding of the sequence to w.
func (cs Chunks) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(cs.Wire())
	return int64(n), err
}

// Decode decodes every chunk contained in wire. Nested payloads are left opaque.
func Decode(wire []byte) (Chunks, error) {
	var chunks Chunks
	for pos := 0; pos < len(wire); {
		c, n, err := DecodeChunk(wire[pos:])
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
		pos += n
	}
	return chunks, nil
}

// ReadChunks reads chunks from r until it is exhausted.
func ReadChunks(r io.Reader) (Chunks, error) {
	var chunks Chunks
	var header [HeaderSize]byte
	var buf [readStep]byte
	for {
		_, err := io.ReadFull(r, header[:])
		if err == io.EOF {
			return chunks, nil
		} else if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrUnexpectedEOF
		} else if err != nil {
			return nil, fmt.Errorf("read chunk header: %w", err)
		}

		size := binary.BigEndian.Uint32(header[0:4])
		c := &Chunk{tlvType: binary.BigEndian.Uint32(header[4:8])}
		c.value = make([]byte, 0, min(size, readStep))
		for remaining := size; remaining > 0; {
			step := min(remaining, readStep)
			if _, err := io.ReadFull(r, buf[:step]); err != nil {
				if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
					return nil, ErrTruncatedPayload
				}
				return nil, fmt.Errorf("read chunk payload: %w", err)
			}
			c.value = append(c.value, buf[:step]...)
			remaining -= step
		}
		chunks = append(chunks, c)
	}
}
