// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package lithium

import "lithium/internal/gimli"

// HashSize is the default output length of Hash, in bytes.
const HashSize = 32

// Hasher is a streaming sponge hash. The zero value is ready to use.
type Hasher struct {
	sponge gimli.Sponge
}

// NewHasher returns a Hasher ready to absorb input.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Write absorbs p into the hash state. It never returns an error, and
// any chunking of a message across multiple Write calls is equivalent to
// absorbing the concatenation in a single call.
func (h *Hasher) Write(p []byte) (int, error) {
	h.sponge.Absorb(p)
	return len(p), nil
}

// Sum appends the digest of out bytes to b and returns the resulting
// slice. It finalizes a copy of the sponge state, so the receiver is
// left unmodified: further Write calls continue absorbing after the
// point of the last Sum, and Sum may be called more than once.
func (h *Hasher) Sum(b []byte, out int) []byte {
	s := h.sponge
	s.Pad()
	digest := make([]byte, out)
	s.Squeeze(digest)
	return append(b, digest...)
}

// Hash computes the sponge digest of m with the given output length in
// a single call.
func Hash(m []byte, out int) []byte {
	h := NewHasher()
	h.Write(m)
	return h.Sum(nil, out)
}
