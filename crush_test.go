// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"crypto/sha256"
	"testing"
)

// TestCrushDeterministic ensures folding is reproducible from the seed and
// that the fold count changes the output stream.
func TestCrushDeterministic(t *testing.T) {
	a := NewCrush(NewRANDU(1), 4)
	b := NewCrush(NewRANDU(1), 4)
	for i := 0; i < 32; i++ {
		av, bv := a.Next(), b.Next()
		if av != bv {
			t.Fatalf("draw #%d: %#x != %#x", i, av, bv)
		}
	}

	c := NewCrush(NewRANDU(1), 2)
	if a.Next() == c.Next() {
		t.Error("different fold counts produced the same first output")
	}
}

// TestCrushWidth ensures the extractor always presents as a 64-bit source
// regardless of the wrapped generator's width.
func TestCrushWidth(t *testing.T) {
	if got := NewCrush(NewEliteLFG(1), 2).Bits(); got != 64 {
		t.Errorf("bits: got %d, want 64", got)
	}
}

// TestCrushTransformsStream ensures outputs differ from the raw draws being
// folded and that the accumulating hash state ties each output to the full
// history.
func TestCrushTransformsStream(t *testing.T) {
	raw := NewRANDU(77)
	crushed := NewCrush(NewRANDU(77), 1)
	same := 0
	for i := 0; i < 64; i++ {
		if Uint64(raw) == crushed.Next() {
			same++
		}
	}
	if same != 0 {
		t.Errorf("%d outputs passed through unchanged", same)
	}

	// Two extractors over the same engine diverge permanently after their
	// fold counts first differ, because the hash state accumulates.
	x := NewCrush(NewRANDU(5), 1)
	y := NewCrush(NewRANDU(5), 1)
	x.Next()
	y.Next()
	y.src.Next() // desynchronize y's engine by one draw
	if x.Next() == y.Next() {
		t.Error("desynchronized extractors converged")
	}
}

// TestCrushCustomHash ensures a caller-provided hash is honored and the
// fold count floor is applied.
func TestCrushCustomHash(t *testing.T) {
	blake := NewCrush(NewXorShift32(9), 1)
	sha := NewCrushHash(NewXorShift32(9), sha256.New(), 1)
	if blake.Next() == sha.Next() {
		t.Error("different hashes produced the same first output")
	}

	floored := NewCrushHash(NewXorShift32(9), sha256.New(), -3)
	again := NewCrushHash(NewXorShift32(9), sha256.New(), 1)
	if floored.Next() != again.Next() {
		t.Error("fold count below 1 was not floored to 1")
	}
}
