// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "math"

// Float64 returns a uniformly distributed float64 in [0, 1) derived from the
// source.  A full 64-bit value is composed from as many native draws as the
// source width requires, and its low 52 bits become the mantissa of a value
// in [1, 2) which is then shifted down by one.  Every representable result
// is an exact multiple of 2^-52, so the conversion loses no precision and
// can never round up to 1.
func Float64(s Source) float64 {
	u := Uint64(s)&(1<<52-1) | 0x3ff0000000000000
	return math.Float64frombits(u) - 1
}

// Float32 returns a uniformly distributed float32 in [0, 1) derived from the
// source, using the same mantissa construction as Float64 with a 32-bit
// draw and the 23-bit float32 mantissa.
func Float32(s Source) float32 {
	u := Uint32(s)&(1<<23-1) | 0x3f800000
	return math.Float32frombits(u) - 1
}
