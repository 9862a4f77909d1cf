// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package lithium

import "lithium/internal/gimli"

// KeySize and NonceSize are the fixed AEAD key and nonce lengths, in
// bytes.
const (
	KeySize   = 32
	NonceSize = 16
)

// DefaultTagSize is the recommended AEAD tag length. Open and Seal
// accept any tag length the caller requests, but reject tags shorter
// than MinTagSize before touching the sponge, per spec open question
// (c): a short tag trades away authenticity margin the caller may not
// realize they're giving up.
const (
	DefaultTagSize = 16
	MinTagSize     = 16
)

// AEAD is a duplex-sponge authenticated cipher bound to a single key.
// Each Seal/Open call runs a fresh session: init, absorb AD, finalize
// AD, then encrypt or decrypt, then finalize the tag. A session is never
// reused across messages.
type AEAD struct {
	key [KeySize]byte
}

// NewAEAD returns an AEAD bound to key, which must be KeySize bytes.
func NewAEAD(key []byte) *AEAD {
	if len(key) != KeySize {
		panic("lithium: invalid AEAD key length")
	}
	a := &AEAD{}
	copy(a.key[:], key)
	return a
}

// Seal encrypts and authenticates m under nonce and ad, appending the
// ciphertext and a tagSize-byte tag to dst, and returns the resulting
// slice. nonce must be NonceSize bytes. The ciphertext may overwrite m
// in place: pass m[:0] as dst.
func (a *AEAD) Seal(dst, nonce, m, ad []byte, tagSize int) []byte {
	if len(nonce) != NonceSize {
		panic("lithium: invalid AEAD nonce length")
	}
	if tagSize < MinTagSize {
		panic("lithium: AEAD tag too short")
	}

	var g gimli.Sponge
	g.InitAEAD(nonce, a.key[:])
	g.Absorb(ad)
	g.FinalAD()

	n := len(dst) + len(m) + tagSize
	var out []byte
	if cap(dst) >= n {
		out = dst[:n]
	} else {
		out = make([]byte, n)
		copy(out, dst)
	}
	c := out[len(dst) : len(dst)+len(m)]
	t := out[len(dst)+len(m):]

	g.Encrypt(c, m)
	g.FinalTag(t)
	return out
}

// Open verifies and decrypts ciphertext c (with its trailing tagSize-byte
// tag already separated into t) under nonce and ad, appending the
// recovered plaintext to dst. It returns the resulting slice and true on
// success. On authentication failure it returns false and the appended
// plaintext bytes are all zero, so callers that ignore the boolean still
// cannot observe unauthenticated plaintext.
func (a *AEAD) Open(dst, nonce, c, t, ad []byte) ([]byte, bool) {
	if len(nonce) != NonceSize {
		panic("lithium: invalid AEAD nonce length")
	}
	if len(t) < MinTagSize {
		panic("lithium: AEAD tag too short")
	}

	var g gimli.Sponge
	g.InitAEAD(nonce, a.key[:])
	g.Absorb(ad)
	g.FinalAD()

	out := append(dst, make([]byte, len(c))...)
	m := out[len(dst):]

	g.Decrypt(m, c)
	ok := g.CheckTag(t)

	mask := byte(0)
	if !ok {
		mask = 0xff
	}
	for i := range m {
		m[i] &^= mask
	}
	return out, ok
}
