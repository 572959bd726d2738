// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "testing"

// TestFloatsUnitInterval ensures 10,000 consecutive pulls from the float
// sequence of several engines all land in [0, 1).
func TestFloatsUnitInterval(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{{
		name: "xorshift32",
		src:  NewXorShift32(0xdeadbeef),
	}, {
		name: "randu",
		src:  NewRANDU(1),
	}, {
		name: "elite lfg",
		src:  NewEliteLFG(0x0212c845),
	}, {
		name: "xoshiro256**",
		src:  NewXoshiro256StarStarSeed(7),
	}}

	for _, test := range tests {
		n := 0
		for f := range Floats(test.src) {
			if f < 0 || f >= 1 {
				t.Errorf("%q: pull #%d out of unit interval: %v",
					test.name, n, f)
			}
			n++
			if n == 10000 {
				break
			}
		}
		if n != 10000 {
			t.Errorf("%q: sequence ended after %d pulls", test.name, n)
		}
	}
}

// TestFloatsMatchesDirect ensures pulling the sequence advances the engine
// exactly as direct derivation does.
func TestFloatsMatchesDirect(t *testing.T) {
	direct := NewXorShift32(1)
	var want []float64
	for i := 0; i < 8; i++ {
		want = append(want, Float64(direct))
	}

	i := 0
	for f := range Floats(NewXorShift32(1)) {
		if f != want[i] {
			t.Errorf("pull #%d: got %v, want %v", i, f, want[i])
		}
		i++
		if i == len(want) {
			break
		}
	}
}

// TestRawsMatchesNext ensures the raw sequence yields the engine's native
// draws with no transformation.
func TestRawsMatchesNext(t *testing.T) {
	want := []uint64{270369, 67634689, 2647435461, 307599695, 2398689233}
	i := 0
	for v := range Raws(NewXorShift32(1)) {
		if v != want[i] {
			t.Errorf("pull #%d: got %d, want %d", i, v, want[i])
		}
		i++
		if i == len(want) {
			break
		}
	}
}

// TestSeqEarlyBreak ensures breaking out of a range loop leaves the
// underlying source positioned immediately after the draws already
// consumed, so interleaved direct use continues the stream.
func TestSeqEarlyBreak(t *testing.T) {
	rng := NewXorShift32(1)
	for range Raws(rng) {
		break
	}
	if got := rng.Next(); got != 67634689 {
		t.Errorf("draw after break: got %d, want 67634689", got)
	}
}
