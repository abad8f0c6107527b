/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package chunk

import "errors"

// Chunk errors.
var (
	ErrChunkTooLarge    = errors.New("chunk payload too large")
	ErrUnexpectedEOF    = errors.New("unexpected end of input in chunk header")
	ErrTruncatedPayload = errors.New("chunk size exceeds remaining input")
)
