// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"hash"

	"github.com/decred/dcrd/crypto/blake256"
)

// Crush wraps a source and a hash, folding several draws through the hash
// per output in the manner of a randomness extractor.  This can improve the
// perceived quality of a statistically weak generator, but it does NOT make
// a predictable generator secure; use ChaCha when security matters.  The
// hash state accumulates across outputs, so every output depends on all
// draws consumed so far.
//
// Crush is itself a 64-bit Source.  It is not safe for concurrent access.
type Crush struct {
	src Source
	h   hash.Hash
	n   int
}

// NewCrush returns a Crush folding n 64-bit draws from the provided source
// through BLAKE-256 per output.  n values below 1 are treated as 1.
func NewCrush(src Source, n int) *Crush {
	return NewCrushHash(src, blake256.New(), n)
}

// NewCrushHash is like NewCrush with a caller-provided hash.
func NewCrushHash(src Source, h hash.Hash, n int) *Crush {
	if n < 1 {
		n = 1
	}
	return &Crush{src: src, h: h, n: n}
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (c *Crush) Bits() uint { return 64 }

// Next folds n draws from the underlying source into the hash and returns
// the first 8 bytes of the running sum as a little-endian value.
//
// This implements the Source interface.
func (c *Crush) Next() uint64 {
	var buf [8]byte
	for i := 0; i < c.n; i++ {
		binary.LittleEndian.PutUint64(buf[:], Uint64(c.src))
		c.h.Write(buf[:])
	}
	sum := c.h.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}
