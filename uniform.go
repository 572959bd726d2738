// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"fmt"
	"math/bits"
)

// Uint32N returns a random uint32 in range [0,n) without modulo bias.  An
// error wrapping ErrInvalidRange is returned if n == 0.
func Uint32N(s Source, n uint32) (uint32, error) {
	if n == 0 {
		return 0, makeError(ErrInvalidRange, "Uint32N bound must be nonzero")
	}
	if n == 1 {
		return 0, nil
	}

	// Rejection sampling over the smallest covering power-of-two range.
	// Masking rather than reducing keeps every accepted value exactly
	// uniform; a plain modulo would favor the low end of the range for
	// bounds that do not divide 2^32.
	n--
	mask := ^uint32(0) >> bits.LeadingZeros32(n)
	for {
		v := Uint32(s) & mask
		if v <= n {
			return v, nil
		}
	}
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.  An
// error wrapping ErrInvalidRange is returned if n == 0.
func Uint64N(s Source, n uint64) (uint64, error) {
	if n == 0 {
		return 0, makeError(ErrInvalidRange, "Uint64N bound must be nonzero")
	}
	if n == 1 {
		return 0, nil
	}
	n--
	mask := ^uint64(0) >> bits.LeadingZeros64(n)
	for {
		v := Uint64(s) & mask
		if v <= n {
			return v, nil
		}
	}
}

// IntRange returns a random int64 in the half-open range [low, high) without
// modulo bias.  An error wrapping ErrInvalidRange is returned if the range
// is empty or inverted.
func IntRange(s Source, low, high int64) (int64, error) {
	if low >= high {
		str := fmt.Sprintf("empty or inverted range [%d, %d)", low, high)
		return 0, makeError(ErrInvalidRange, str)
	}

	// The unsigned difference is the span even when it exceeds the int64
	// range, e.g. [math.MinInt64, math.MaxInt64).
	v, err := Uint64N(s, uint64(high)-uint64(low))
	if err != nil {
		return 0, err
	}
	return low + int64(v), nil
}

// Float64Range returns a random float64 in the half-open range [low, high).
// An error wrapping ErrInvalidRange is returned if the range is empty or
// inverted.
func Float64Range(s Source, low, high float64) (float64, error) {
	if low >= high {
		str := fmt.Sprintf("empty or inverted range [%g, %g)", low, high)
		return 0, makeError(ErrInvalidRange, str)
	}
	return low + Float64(s)*(high-low), nil
}
