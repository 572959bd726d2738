// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Source is the capability contract implemented by every generator in this
// package.  It is intentionally minimal so that the derivation functions can
// be written once and operate on any generator without knowledge of its
// recurrence.
//
// Implementations are required to be deterministic: the sequence of values
// observed through Next must be fully determined by the seed the generator
// was constructed with.
type Source interface {
	// Bits returns the native output width of the generator in bits.  It
	// must be one of 8, 16, 32, or 64 and must not change over the life of
	// the generator.
	Bits() uint

	// Next advances the generator state by exactly one step and returns the
	// next raw output in the low Bits() bits of the result.  The remaining
	// high bits are zero.  Next never fails; every reachable state is a
	// valid input to the recurrence.
	Next() uint64
}

// compose draws from the source until at least want bits have been
// accumulated.  The first draw occupies the most significant position, so a
// 32-bit generator produces 64-bit values as first<<32 | second.
func compose(s Source, want uint) uint64 {
	width := s.Bits()
	v := s.Next()
	for have := width; have < want; have += width {
		v = v<<width | s.Next()
	}
	return v
}

// Uint64 returns a uniformly distributed 64-bit value derived from as many
// draws as the native width of the source requires.
func Uint64(s Source) uint64 {
	return compose(s, 64)
}

// Uint32 returns a 32-bit value derived from the source.  Sources wider than
// 32 bits are truncated to their low 32 bits; narrower sources contribute
// multiple draws.
func Uint32(s Source) uint32 {
	return uint32(compose(s, 32))
}

// Uint16 returns a 16-bit value derived from the source.
func Uint16(s Source) uint16 {
	return uint16(compose(s, 16))
}

// Uint8 returns an 8-bit value derived from a single draw of the source.
func Uint8(s Source) uint8 {
	return uint8(compose(s, 8))
}
