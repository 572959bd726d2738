// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Parameters of the MT19937 recurrence, from the 2002 reference
// implementation by Matsumoto and Nishimura
// (https://www.math.sci.hiroshima-u.ac.jp/m-mat/MT/MT2002/emt19937ar.html).
const (
	mtStateN = 624
	mtStateM = 397

	mtMatrixA   = 0x9908b0df
	mtMaskB     = 0x9d2c5680
	mtMaskC     = 0xefc60000
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MT19937 is the 32-bit Mersenne Twister.  Like ChaCha it produces output in
// blocks: the 624-word state is regenerated all at once and tempered values
// are served from it one draw at a time, invisible behind the Source
// contract.  Its period is 2^19937-1.
//
// MT19937 is not safe for concurrent access.
type MT19937 struct {
	state [mtStateN]uint32
	index int
}

// NewMT19937 returns a generator initialized from the provided seed with the
// reference init_genrand expansion.  All seed values are valid; the
// canonical demonstration seed is 5489.
func NewMT19937(seed uint32) *MT19937 {
	r := &MT19937{index: mtStateN}
	r.state[0] = seed
	for i := 1; i < mtStateN; i++ {
		prev := r.state[i-1]
		r.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	return r
}

// regenerate advances the entire state block by one generation.
func (r *MT19937) regenerate() {
	var kk int
	for ; kk < mtStateN-mtStateM; kk++ {
		x := r.state[kk]&mtUpperMask | r.state[kk+1]&mtLowerMask
		r.state[kk] = r.state[kk+mtStateM] ^ x>>1 ^ (x&1)*mtMatrixA
	}
	for ; kk < mtStateN-1; kk++ {
		x := r.state[kk]&mtUpperMask | r.state[kk+1]&mtLowerMask
		r.state[kk] = r.state[kk+mtStateM-mtStateN] ^ x>>1 ^ (x&1)*mtMatrixA
	}
	x := r.state[mtStateN-1]&mtUpperMask | r.state[0]&mtLowerMask
	r.state[mtStateN-1] = r.state[mtStateM-1] ^ x>>1 ^ (x&1)*mtMatrixA

	r.index = 0
}

// Uint32 advances the generator and returns the next tempered value,
// regenerating the state block once it is exhausted.
func (r *MT19937) Uint32() uint32 {
	if r.index >= mtStateN {
		r.regenerate()
	}
	y := r.state[r.index]
	r.index++

	y ^= y >> 11
	y ^= y << 7 & mtMaskB
	y ^= y << 15 & mtMaskC
	y ^= y >> 18
	return y
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *MT19937) Bits() uint { return 32 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *MT19937) Next() uint64 { return uint64(r.Uint32()) }
