// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// EliteLFG is the 8-bit lagged Fibonacci generator from the BBC Micro
// release of Elite (the DORND routine,
// https://elite.bbcelite.com/cassette/main/subroutine/dornd.html).  The
// state is four byte registers plus the 6502 carry flag, advanced by a
// rotate-with-carry and two add-with-carry steps per draw.  It is preserved
// for historical fidelity; with all registers seeded to 1 the early outputs
// are literally the Fibonacci numbers.
//
// EliteLFG is not safe for concurrent access.
type EliteLFG struct {
	r0, r1, r2, r3 uint8
	carry          bool
}

// NewEliteLFG returns a generator whose four byte registers are taken from
// the big-endian bytes of the provided seed.  Each zero byte is
// independently remapped to 1, matching the game's requirement that no
// register starts empty.
func NewEliteLFG(seed uint32) *EliteLFG {
	b := [4]uint8{uint8(seed >> 24), uint8(seed >> 16), uint8(seed >> 8), uint8(seed)}
	for i, v := range b {
		if v == 0 {
			b[i] = 1
		}
	}
	return &EliteLFG{r0: b[0], r1: b[1], r2: b[2], r3: b[3]}
}

// Uint8 advances the generator and returns the next value in its native
// width.
func (r *EliteLFG) Uint8() uint8 {
	// ROL A on r0 through the carry flag.
	a := r.r0
	rolCarry := a&0x80 != 0
	a <<= 1
	if r.carry {
		a |= 1
	}
	x := a

	// ADC r2, then swap the old value into r2.
	sum := uint16(a) + uint16(r.r2)
	if rolCarry {
		sum++
	}
	r.r0 = uint8(sum)
	r.r2 = x

	// ADC r3 into r1, then swap the old value into r3.
	a = r.r1
	x = a
	sum2 := uint16(a) + uint16(r.r3)
	if sum > 0xff {
		sum2++
	}
	r.r1 = uint8(sum2)
	r.r3 = x
	r.carry = sum2 > 0xff

	return r.r1
}

// Last returns the previous output without advancing the generator.  Elite
// used the pair of the current and previous values as a cheap 16-bit draw.
func (r *EliteLFG) Last() uint8 {
	return r.r3
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *EliteLFG) Bits() uint { return 8 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *EliteLFG) Next() uint64 { return uint64(r.Uint8()) }
