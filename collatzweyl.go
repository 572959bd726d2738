// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// CollatzWeyl64 is the 64-bit Collatz-Weyl generator of Tomasz Dziala
// (https://arxiv.org/abs/2312.17043): a chaotic Collatz-like map combined
// with a Weyl sequence whose odd increment selects one of 2^63 independent
// streams.  The early outputs of a fresh generator are visibly small while
// the state fills up; the paper suggests discarding the first few dozen
// draws when that matters.
//
// CollatzWeyl64 is not safe for concurrent access.
type CollatzWeyl64 struct {
	x    uint64
	a    uint64
	weyl uint64
	s    uint64
}

// NewCollatzWeyl64 returns a generator whose Weyl increment is the provided
// seed forced odd.  All seed values are valid; seeds differing only in the
// lowest bit select the same stream.
func NewCollatzWeyl64(seed uint64) *CollatzWeyl64 {
	return &CollatzWeyl64{s: seed | 1}
}

// NewCollatzWeyl64State returns a generator with an explicit initial x state
// in addition to the seed, selecting a different starting point within the
// seed's stream.
func NewCollatzWeyl64State(state, seed uint64) *CollatzWeyl64 {
	return &CollatzWeyl64{x: state, s: seed | 1}
}

// Uint64 advances the generator and returns the next value in its native
// width.
func (r *CollatzWeyl64) Uint64() uint64 {
	r.a += r.x
	r.weyl += r.s
	r.x = (r.x>>1)*(r.a|1) ^ r.weyl
	return r.a>>48 ^ r.x
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *CollatzWeyl64) Bits() uint { return 64 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *CollatzWeyl64) Next() uint64 { return r.Uint64() }
