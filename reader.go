// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "encoding/binary"

// Reader adapts a Source to io.Reader, serializing each native draw in
// little-endian byte order.  Partial draws are carried over between calls,
// so reading one byte at a time observes the same stream as reading in
// bulk.  Read never errors.
//
// Reader is not safe for concurrent access.
type Reader struct {
	src    Source
	buf    [8]byte
	unread []byte
}

// NewReader returns a Reader serving bytes from the provided source.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Read fills b with len(b) bytes derived from the underlying source.  The
// returned error is always nil.
//
// This implements the io.Reader interface.
func (r *Reader) Read(b []byte) (int, error) {
	n := len(b)
	for len(b) > 0 {
		if len(r.unread) == 0 {
			binary.LittleEndian.PutUint64(r.buf[:], r.src.Next())
			r.unread = r.buf[:r.src.Bits()/8]
		}
		c := copy(b, r.unread)
		r.unread = r.unread[c:]
		b = b[c:]
	}
	return n, nil
}

// Next returns the next n bytes from the reader.
func (r *Reader) Next(n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}
