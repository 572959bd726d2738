// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// References:
//   [KNU] The Art of Computer Programming, Volume 2, Chapter 3.2.1
//     (Donald Knuth)
//
//   [PMM] Random Number Generators: Good Ones Are Hard To Find
//     (Stephen Park, Keith Miller)
//     https://dl.acm.org/doi/10.1145/63039.63042

// LCG32 is a 32-bit linear congruential generator with caller-provided
// parameters following the classic state = (A*state + C) mod M recurrence
// from [KNU].  The intermediate product is computed at full precision, so
// the recurrence is exact for any modulus.  Output quality and period are
// entirely determined by the chosen parameters; see the named constructors
// for historically significant parameter sets.
//
// LCG32 is not safe for concurrent access.
type LCG32 struct {
	a, c, m uint32
	state   uint32
}

// NewLCG32 returns a generator with the provided multiplier, increment, and
// modulus, seeded with the provided value taken modulo M.  For purely
// multiplicative parameter sets (C == 0) a zero residue is remapped to 1,
// since zero is an absorbing state of the multiplicative recurrence.
func NewLCG32(a, c, m, seed uint32) *LCG32 {
	seed %= m
	if c == 0 && seed == 0 {
		seed = 1
	}
	return &LCG32{a: a, c: c, m: m, state: seed}
}

// NewRANDU returns the infamous IBM RANDU generator: A = 65539, C = 0,
// M = 2^31.  Consecutive triples of its outputs fall on just 15 planes in
// three dimensions, which is exactly why it is preserved here; the defect is
// part of the sequence being reproduced.  The seed is taken modulo M and
// forced odd, as the original requires for a full-period sequence.
func NewRANDU(seed uint32) *LCG32 {
	return NewLCG32(65539, 0, 1<<31, seed|1)
}

// NewMinStd returns the Park-Miller "minimal standard" generator from the
// 1993 revision of [PMM]: A = 48271, C = 0, M = 2^31-1.
func NewMinStd(seed uint32) *LCG32 {
	return NewLCG32(48271, 0, 2147483647, seed)
}

// NewMinStd88 returns the original 1988 "minimal standard" generator from
// [PMM]: A = 16807, C = 0, M = 2^31-1.
func NewMinStd88(seed uint32) *LCG32 {
	return NewLCG32(16807, 0, 2147483647, seed)
}

// NewVisualBasic6 returns a generator with the multiplier and increment
// behind Visual Basic 6's Rnd: A = 0x43fd43fd, C = 0xc39ec3, M = 2^24-1.
// VB6 itself started from the fixed seed 0x50000.
func NewVisualBasic6(seed uint32) *LCG32 {
	return NewLCG32(0x43fd43fd, 0xc39ec3, 0xffffff, seed)
}

// Uint32 advances the generator and returns the next value in its native
// width.
func (r *LCG32) Uint32() uint32 {
	r.state = uint32((uint64(r.state)*uint64(r.a) + uint64(r.c)) % uint64(r.m))
	return r.state
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *LCG32) Bits() uint { return 32 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *LCG32) Next() uint64 { return uint64(r.Uint32()) }

// LCG64 is a 64-bit linear congruential generator with caller-provided
// parameters.  Unlike LCG32, the intermediate product wraps at 64 bits
// before the modulus is applied, so the recurrence is only exact when M
// divides 2^64.  All of the named parameter sets satisfy that.
//
// LCG64 is not safe for concurrent access.
type LCG64 struct {
	a, c, m uint64
	state   uint64
}

// NewLCG64 returns a generator with the provided multiplier, increment, and
// modulus, seeded with the provided value taken modulo M.  For purely
// multiplicative parameter sets (C == 0) a zero residue is remapped to 1.
func NewLCG64(a, c, m, seed uint64) *LCG64 {
	seed %= m
	if c == 0 && seed == 0 {
		seed = 1
	}
	return &LCG64{a: a, c: c, m: m, state: seed}
}

// NewRANF returns the RANF generator used by CDC and Cray system libraries:
// A = 44485709377909, C = 0, M = 2^48.  The seed is taken modulo M and
// forced odd, as the multiplicative recurrence requires for full period.
func NewRANF(seed uint64) *LCG64 {
	return NewLCG64(44485709377909, 0, 1<<48, seed|1)
}

// Uint64 advances the generator and returns the next value in its native
// width.
func (r *LCG64) Uint64() uint64 {
	r.state = (r.state*r.a + r.c) % r.m
	return r.state
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *LCG64) Bits() uint { return 64 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *LCG64) Next() uint64 { return r.Uint64() }
