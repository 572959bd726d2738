// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "testing"

// TestCollatzWeyl64ReferenceSequence ensures the generator reproduces the
// expected leading outputs, which are small by construction while the
// chaotic state fills up.
func TestCollatzWeyl64ReferenceSequence(t *testing.T) {
	tests := []struct {
		name string
		rng  *CollatzWeyl64
		want []uint64
	}{{
		name: "seed 1",
		rng:  NewCollatzWeyl64(1),
		want: []uint64{1, 2, 0, 4, 11, 89},
	}, {
		name: "even seed forced odd",
		rng:  NewCollatzWeyl64(2),
		want: []uint64{NewCollatzWeyl64(3).Uint64()},
	}}

	for _, test := range tests {
		for i, want := range test.want {
			if got := test.rng.Uint64(); got != want {
				t.Errorf("%q: output #%d: got %d, want %d", test.name, i,
					got, want)
			}
		}
	}
}

// TestCollatzWeyl64State ensures the explicit-state constructor selects a
// different starting point and remains deterministic.
func TestCollatzWeyl64State(t *testing.T) {
	a := NewCollatzWeyl64State(12345, 1)
	b := NewCollatzWeyl64State(12345, 1)
	for i := 0; i < 1000; i++ {
		va, vb := a.Uint64(), b.Uint64()
		if va != vb {
			t.Fatalf("output #%d diverged: %d != %d", i, va, vb)
		}
	}
}
