// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Buffer caches a block of draws from an underlying source and serves them
// out one at a time, refilling the block on exhaustion.  It is itself a
// Source with the same native width as the wrapped generator, so it can be
// placed in front of an expensive generator without changing the observed
// sequence.
//
// Buffer is not safe for concurrent access.
type Buffer struct {
	src   Source
	block []uint64
	off   int
}

// NewBuffer returns a Buffer caching n draws at a time from the provided
// source.  The first block is not filled until the first draw is requested.
func NewBuffer(src Source, n int) *Buffer {
	return &Buffer{src: src, block: make([]uint64, n), off: n}
}

// Refill regenerates the cached block regardless of how much of it has been
// consumed, advancing the underlying source once per cached draw.
func (b *Buffer) Refill() {
	for i := range b.block {
		b.block[i] = b.src.Next()
	}
	b.off = 0
}

// Bits returns the native output width of the underlying source.
//
// This implements the Source interface.
func (b *Buffer) Bits() uint { return b.src.Bits() }

// Next returns the next cached draw, refilling the block once the current
// one is exhausted.
//
// This implements the Source interface.
func (b *Buffer) Next() uint64 {
	if b.off >= len(b.block) {
		b.Refill()
	}
	v := b.block[b.off]
	b.off++
	return v
}
