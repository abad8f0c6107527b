/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ident_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tryoutd/tryoutd/ident"
)

func TestParseKnownValues(t *testing.T) {
	id, err := ident.Parse("0")
	require.NoError(t, err)
	assert.Equal(t, ident.ID{}, id)

	id, err = ident.Parse("Z")
	require.NoError(t, err)
	assert.Equal(t, byte(61), id[15])

	id, err = ident.Parse("10")
	require.NoError(t, err)
	assert.Equal(t, byte(62), id[15])
	assert.Equal(t, "10", id.String())
}

func TestParseMaxValue(t *testing.T) {
	max := new(big.Int).Lsh(big.NewInt(1), 128)
	max.Sub(max, big.NewInt(1))

	id, err := ident.Parse(max.Text(62))
	require.NoError(t, err)
	for _, b := range id {
		assert.Equal(t, byte(0xff), b)
	}

	tooLarge := new(big.Int).Add(max, big.NewInt(1))
	_, err = ident.Parse(tooLarge.Text(62))
	assert.ErrorIs(t, err, ident.ErrInvalidID)
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "-1", "+1", "abc_def", "ab cd", "é"} {
		_, err := ident.Parse(s)
		assert.ErrorIs(t, err, ident.ErrInvalidID, s)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := ident.New()
		parsed, err := ident.Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestFromBytes(t *testing.T) {
	id := ident.New()
	copied, err := ident.FromBytes(id.Bytes())
	require.NoError(t, err)
	assert.Equal(t, id, copied)
	assert.Equal(t, id.UUID().String(), copied.UUID().String())

	_, err = ident.FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ident.ErrInvalidID)
}
