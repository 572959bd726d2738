// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "iter"

// Floats returns an unbounded sequence of unit-interval floats derived from
// the source.  Each pull performs one Float64 derivation; the sequence never
// terminates on its own, so the caller is expected to break out of the range
// loop.  The source is borrowed for as long as the sequence is being pulled
// and restarting the sequence requires reconstructing the generator.
func Floats(s Source) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for yield(Float64(s)) {
		}
	}
}

// Raws returns an unbounded sequence of the source's raw draws, one engine
// advance per pull.
func Raws(s Source) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for yield(s.Next()) {
		}
	}
}
