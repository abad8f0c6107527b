/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSize(t *testing.T) {
	assert.NoError(t, checkSize(0))
	assert.NoError(t, checkSize(MaxPayloadSize-1))
	assert.ErrorIs(t, checkSize(MaxPayloadSize), ErrChunkTooLarge)
	assert.ErrorIs(t, checkSize(MaxPayloadSize+1), ErrChunkTooLarge)
	assert.ErrorIs(t, checkSize(1<<40), ErrChunkTooLarge)
}
