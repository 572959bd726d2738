// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// References:
//   [XOR] Xorshift RNGs (George Marsaglia)
//     https://www.jstor.org/stable/30035560
//
//   [VIG] An experimental exploration of Marsaglia's xorshift generators,
//     scrambled (Sebastiano Vigna)
//     https://arxiv.org/abs/1402.6246

// XorShift32 is a 32-bit xorshift generator with the 13/17/5 shift triple
// from [XOR].  It is extremely fast and produces output that is good enough
// for non-statistical uses, but it fails modern test batteries and every
// future output is trivially predictable from a single observed value.  Its
// period is 2^32-1.
//
// XorShift32 is not safe for concurrent access.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a generator seeded with the provided value.  A zero
// seed is remapped to 1 since the all-zero state is a fixed point of the
// recurrence that would only ever produce zero.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 1
	}
	return &XorShift32{state: seed}
}

// Uint32 advances the generator and returns the next value in its native
// width.
func (r *XorShift32) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *XorShift32) Bits() uint { return 32 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *XorShift32) Next() uint64 { return uint64(r.Uint32()) }

// XorShift64 is a 64-bit xorshift generator with the 13/7/17 shift triple
// from [XOR].  Its period is 2^64-1.
//
// XorShift64 is not safe for concurrent access.
type XorShift64 struct {
	state uint64
}

// NewXorShift64 returns a generator seeded with the provided value.  A zero
// seed is remapped to 1 to avoid the all-zero fixed point.
func NewXorShift64(seed uint64) *XorShift64 {
	if seed == 0 {
		seed = 1
	}
	return &XorShift64{state: seed}
}

// Uint64 advances the generator and returns the next value in its native
// width.
func (r *XorShift64) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *XorShift64) Bits() uint { return 64 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *XorShift64) Next() uint64 { return r.Uint64() }

// XorShift128Plus is the 128-bit state xorshift+ generator described in
// [VIG].  The additive scrambler makes its low bits considerably stronger
// than the plain xorshift generators.  Its period is 2^128-1.
//
// XorShift128Plus is not safe for concurrent access.
type XorShift128Plus struct {
	s0, s1 uint64
}

// NewXorShift128Plus returns a generator seeded with the two provided state
// words.  Each zero word is independently remapped to 1; an all-zero state
// is a fixed point of the recurrence.
func NewXorShift128Plus(s0, s1 uint64) *XorShift128Plus {
	if s0 == 0 {
		s0 = 1
	}
	if s1 == 0 {
		s1 = 1
	}
	return &XorShift128Plus{s0: s0, s1: s1}
}

// Uint64 advances the generator and returns the next value in its native
// width.
func (r *XorShift128Plus) Uint64() uint64 {
	t := r.s0
	s := r.s1
	r.s0 = s
	t ^= t << 23
	t ^= t >> 18
	t ^= s ^ (s >> 5)
	r.s1 = t
	return t + s
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *XorShift128Plus) Bits() uint { return 64 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *XorShift128Plus) Next() uint64 { return r.Uint64() }
