// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Static is not a pseudorandom generator: it serves whatever values a
// caller-provided function returns, exposed through the Source interface.
// It exists so that code written against Source can be exercised with fully
// controlled inputs in tests.
type Static struct {
	width uint
	fn    func() uint64
}

// NewStatic returns a Static source of the provided width.  The function's
// return values are masked to the width.  Widths other than 8, 16, 32, or
// 64 are remapped to 64.
func NewStatic(width uint, fn func() uint64) *Static {
	switch width {
	case 8, 16, 32, 64:
	default:
		width = 64
	}
	return &Static{width: width, fn: fn}
}

// Bits returns the declared output width.
//
// This implements the Source interface.
func (r *Static) Bits() uint { return r.width }

// Next returns the next caller-provided value, masked to the declared
// width.
//
// This implements the Source interface.
func (r *Static) Next() uint64 {
	v := r.fn()
	if r.width < 64 {
		v &= 1<<r.width - 1
	}
	return v
}
