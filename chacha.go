// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"strconv"

	"github.com/decred/dcrd/crypto/blake256"
	"golang.org/x/crypto/chacha20"
)

// ChaChaSeedSize is the required length of seeds for NewChaChaSeed.
const ChaChaSeedSize = chacha20.KeySize

// ChaCha is a deterministic generator backed by the ChaCha20 keystream (RFC
// 8439).  It is the only generator in this package whose output is
// cryptographically strong, and the only one whose recurrence produces more
// than one word per block: the cipher generates 64-byte blocks which are
// buffered internally and served a 32-bit word at a time, so the Source
// contract of one draw per call is preserved.  The cipher's block counter
// advances as blocks are consumed.
//
// ChaCha is not safe for concurrent access.
type ChaCha struct {
	cipher *chacha20.Cipher
	block  [64]byte
	off    int
}

// NewChaChaSeed returns a generator keyed by a 32-byte seed and a run
// iteration that is folded into the cipher nonce, allowing many independent
// streams from one seed.  This will panic if the length of seed is not
// ChaChaSeedSize bytes.
func NewChaChaSeed(seed []byte, run uint32) *ChaCha {
	if l := len(seed); l != ChaChaSeedSize {
		panic("prng: bad seed length " + strconv.Itoa(l))
	}

	nonce := make([]byte, chacha20.NonceSize)
	binary.LittleEndian.PutUint32(nonce[:4], run)

	// Never errors with correct key and nonce sizes.
	cipher, _ := chacha20.NewUnauthenticatedCipher(seed, nonce)
	r := &ChaCha{cipher: cipher}
	r.off = len(r.block) // force a refill on the first draw
	return r
}

// NewChaCha returns a generator keyed by the BLAKE-256 hash of the provided
// seed value.  Generators constructed from equal seeds produce identical
// streams.
func NewChaCha(seed uint64) *ChaCha {
	var preimage [8]byte
	binary.LittleEndian.PutUint64(preimage[:], seed)
	key := blake256.Sum256(preimage[:])
	return NewChaChaSeed(key[:], 0)
}

// refill regenerates the internal keystream block.
func (r *ChaCha) refill() {
	// Zero the block such that it is overwritten with just the keystream.
	// Destination and source are allowed to overlap (exactly).
	for i := range r.block {
		r.block[i] = 0
	}
	r.cipher.XORKeyStream(r.block[:], r.block[:])
	r.off = 0
}

// Uint32 returns the next 32-bit keystream word, regenerating a new block
// once the current one is exhausted.
func (r *ChaCha) Uint32() uint32 {
	if r.off == len(r.block) {
		r.refill()
	}
	v := binary.LittleEndian.Uint32(r.block[r.off:])
	r.off += 4
	return v
}

// Bits returns the native output width of the generator.
//
// This implements the Source interface.
func (r *ChaCha) Bits() uint { return 32 }

// Next advances the generator state and returns the next raw output.
//
// This implements the Source interface.
func (r *ChaCha) Next() uint64 { return uint64(r.Uint32()) }
