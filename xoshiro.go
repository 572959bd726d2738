// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "math/bits"

// Xoshiro256StarStar is the xoshiro256** generator of Blackman and Vigna,
// "Scrambled Linear Pseudorandom Number Generators"
// (https://arxiv.org/abs/1805.01407).  It is an all-purpose generator with a
// period of 2^256-1 that passes the common statistical test batteries.
//
// Xoshiro256StarStar is not safe for concurrent access.
type Xoshiro256StarStar struct {
	s [4]uint64
}

// NewXoshiro256StarStar returns a generator seeded with the four provided
// state words.  Each zero word is independently remapped to 1; an all-zero
// state is a fixed point of the recurrence.
func NewXoshiro256StarStar(seed [4]uint64) *Xoshiro256StarStar {
	for i, w := range seed {
		if w == 0 {
			seed[i] = 1
		}
	}
	return &Xoshiro256StarStar{s: seed}
}

// NewXoshiro256StarStarSeed returns a generator whose four state words are
// expanded from a single seed with SplitMix64, per the seeding procedure the
// xoshiro authors recommend.
func NewXoshiro256StarStarSeed(seed uint64) *Xoshiro256StarStar {
	sm := NewSplitMix64(seed)
	return NewXoshiro256StarStar([4]uint64{
		sm.Uint64(), sm.Uint64(), sm.Uint64(), sm.Uint64(),
	})
}

// Uint64 advances the generator and returns the next value in its native
// width.
func (r *Xoshiro256StarStar) Uint64() uint64 {
	result := bits.RotateLeft64(r.s[1]*5, 7) * 9
	t := r.s[1] << 17

	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]

	r.s[2] ^= t
	r.s[3] = bits.RotateLeft64(r.s[3], 45)

	return result
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *Xoshiro256StarStar) Bits() uint { return 64 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *Xoshiro256StarStar) Next() uint64 { return r.Uint64() }
