// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package prng implements a collection of deterministic pseudorandom number
generators along with generic facilities for deriving richer values from them.

Every generator produces a sequence of fixed-width unsigned integers that is
fully determined by its seed.  Two generators of the same type constructed
with the same seed always produce identical sequences, which makes the
package suitable for reproducible simulations, property-based tests, and
procedural generation.  With the exception of ChaCha, the generators are NOT
cryptographically secure.  Several of them (RANDU in particular) are
preserved warts and all for historical fidelity and produce output that is
known to be statistically poor.

Generators share no code.  Each one implements the Source interface, which
declares its native output width and advances its state by exactly one step
per call.  Everything else in the package (unit-interval floats, unbiased
bounded integers, range sampling, generic typed sampling, infinite
sequences, and the io.Reader adapter) is written once against Source and
works with any generator, including caller-provided ones.

All operations are total except for the range samplers, which return an
error wrapping ErrInvalidRange when given an empty or inverted range.  No
generator in this package is safe for concurrent access; callers that need
randomness on multiple goroutines should give each goroutine its own
independently seeded generator.
*/
package prng
