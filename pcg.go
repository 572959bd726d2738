// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "math/bits"

// pcg32Multiplier is the 64-bit LCG multiplier used by the PCG32 state
// transition.
const pcg32Multiplier = 6364136223846793005

// PCG32 is the pcg32 generator of Melissa O'Neill
// (https://www.pcg-random.org): a 64-bit linear congruential state with a
// xorshift-and-rotate output permutation.  The stream parameter selects one
// of 2^63 distinct sequences with the same seed; each sequence has a period
// of 2^64.
//
// PCG32 is not safe for concurrent access.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a generator initialized with the provided seed and stream
// using the reference pcg32_srandom initialization: the stream is folded
// into a forced-odd increment, and the seed is absorbed through two state
// transitions.  All seed and stream values are valid.
func NewPCG32(seed, stream uint64) *PCG32 {
	r := &PCG32{inc: stream<<1 | 1}
	r.Uint32()
	r.state += seed
	r.Uint32()
	return r
}

// Uint32 advances the generator and returns the next value in its native
// width.
func (r *PCG32) Uint32() uint32 {
	prev := r.state
	r.state = prev*pcg32Multiplier + r.inc

	// Output permutation: the high state bits select a rotation of the
	// xorshifted mid bits.
	x := uint32(((prev >> 18) ^ prev) >> 27)
	rot := int(prev >> 59)
	return bits.RotateLeft32(x, -rot)
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *PCG32) Bits() uint { return 32 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *PCG32) Next() uint64 { return uint64(r.Uint32()) }
