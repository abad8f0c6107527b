/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package web

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// contentETag returns a strong entity tag derived from the CIDv1 (raw, sha2-256) of wire.
func contentETag(wire []byte) string {
	sum, err := multihash.Sum(wire, multihash.SHA2_256, -1)
	if err != nil {
		return ""
	}
	return `"` + cid.NewCidV1(cid.Raw, sum).String() + `"`
}
