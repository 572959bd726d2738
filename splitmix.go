// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// SplitMix64 is the 64-bit mixing generator from Steele, Lea, and Flood,
// "Fast splittable pseudorandom number generators".  The state is a simple
// counter with a 0x9e3779b97f4a7c15 (golden ratio) increment whose value is
// scrambled through two multiply-xor-shift rounds, so every seed, including
// zero, yields a full 2^64 period.  It is the conventional choice for
// expanding a single word of seed material into the larger states required
// by other generators.
//
// SplitMix64 is not safe for concurrent access.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a generator seeded with the provided value.  All
// seed values are valid.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 advances the generator and returns the next value in its native
// width.
func (r *SplitMix64) Uint64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	x := r.state
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *SplitMix64) Bits() uint { return 64 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *SplitMix64) Next() uint64 { return r.Uint64() }
