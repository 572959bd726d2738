// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "testing"

// TestLFSR16ReferenceSequence ensures the shift register reproduces the
// expected output for the 16,14,13,11 tap set.
func TestLFSR16ReferenceSequence(t *testing.T) {
	tests := []struct {
		name string
		seed uint16
		want []uint16
	}{{
		name: "seed 0xACE1",
		seed: 0xACE1,
		want: []uint16{22128, 43832, 21916, 10958, 5479, 35507},
	}, {
		name: "seed 0 remaps to 1",
		seed: 0,
		want: []uint16{32768, 16384, 8192, 4096, 2048, 1024},
	}}

	for _, test := range tests {
		rng := NewLFSR16(test.seed)
		for i, want := range test.want {
			if got := rng.Uint16(); got != want {
				t.Errorf("%q: output #%d: got %d, want %d", test.name, i,
					got, want)
			}
		}
	}
}

// TestLFSR16Period ensures the register cycles through the full 2^16-1
// nonzero states before repeating.
func TestLFSR16Period(t *testing.T) {
	rng := NewLFSR16(1)
	seen := make(map[uint16]bool, 1<<16)
	var period int
	for {
		v := rng.Uint16()
		if seen[v] {
			break
		}
		seen[v] = true
		period++
	}
	if period != 1<<16-1 {
		t.Errorf("period: got %d, want %d", period, 1<<16-1)
	}
}
