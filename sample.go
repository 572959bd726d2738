// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Sampler is the second, narrower capability of the derivation layer: a
// function that constructs a value of some type from raw draws of a source.
// Samplers compose; Pair and Triple build tuple samplers out of component
// samplers, and callers can write their own for any type that can be filled
// from raw integers.
//
// For reproducibility, a sampler must consume a fixed draw order: component
// order is draw order.
type Sampler[T any] func(Source) T

// SampleUint8 is a Sampler[uint8] drawing a single truncated value.
func SampleUint8(s Source) uint8 { return Uint8(s) }

// SampleUint16 is a Sampler[uint16].
func SampleUint16(s Source) uint16 { return Uint16(s) }

// SampleUint32 is a Sampler[uint32].
func SampleUint32(s Source) uint32 { return Uint32(s) }

// SampleUint64 is a Sampler[uint64].
func SampleUint64(s Source) uint64 { return Uint64(s) }

// SampleBool is a Sampler[bool] using the low bit of a single draw.
func SampleBool(s Source) bool { return s.Next()&1 == 1 }

// SampleFloat64 is a Sampler[float64] producing unit-interval values.
func SampleFloat64(s Source) float64 { return Float64(s) }

// Pair samples a two-component tuple.  The first component is sampled
// before the second, each consuming its own draws.
func Pair[A, B any](s Source, a Sampler[A], b Sampler[B]) (A, B) {
	av := a(s)
	bv := b(s)
	return av, bv
}

// Triple samples a three-component tuple in declared order.
func Triple[A, B, C any](s Source, a Sampler[A], b Sampler[B], c Sampler[C]) (A, B, C) {
	av := a(s)
	bv := b(s)
	cv := c(s)
	return av, bv, cv
}
