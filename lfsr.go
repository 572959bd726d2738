// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// LFSR16 is a 16-bit Fibonacci linear-feedback shift register with the
// maximal-period tap set 16,14,13,11 (feedback polynomial
// x^16 + x^14 + x^13 + x^11 + 1).  Each draw shifts the register once, so
// consecutive outputs overlap in 15 bits; it is included as a building block
// and curiosity rather than as a usable uniform generator.  Its period is
// 2^16-1.
//
// LFSR16 is not safe for concurrent access.
type LFSR16 struct {
	lfsr uint16
}

// NewLFSR16 returns a generator seeded with the provided value.  A zero seed
// is remapped to 1 since the all-zero register never leaves that state.
func NewLFSR16(seed uint16) *LFSR16 {
	if seed == 0 {
		seed = 1
	}
	return &LFSR16{lfsr: seed}
}

// Uint16 advances the register and returns its new contents.
func (r *LFSR16) Uint16() uint16 {
	bit := (r.lfsr ^ r.lfsr>>2 ^ r.lfsr>>3 ^ r.lfsr>>5) & 1
	r.lfsr = r.lfsr>>1 | bit<<15
	return r.lfsr
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *LFSR16) Bits() uint { return 16 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *LFSR16) Next() uint64 { return uint64(r.Uint16()) }
