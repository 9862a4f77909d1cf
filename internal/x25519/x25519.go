// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

// Package x25519 implements the X25519 scalar operations the signature
// scheme is built on: base-point multiplication, scalar reduction mod the
// group order, and the Schnorr-style sign/verify combinators. It is the
// concrete backend for the "named opaque primitives" the core spec
// describes abstractly as x25519_base_uniform, x25519_scalar_reduce,
// x25519_sign and x25519_verify.
package x25519

import (
	"lithium/internal/edwards25519"
	"lithium/internal/scalar"
	"lithium/internal/wipe"
)

// Len is the byte length of an X25519 scalar or encoded point.
const Len = 32

// clamp applies the standard X25519 scalar clamp in place: clearing the
// low 3 bits forces the scalar to a multiple of the cofactor, and fixing
// the top two bits keeps the scalar in a fixed bit-length range
// independent of its value.
//
// Open question (a) from the distillation: the excerpted sources don't
// show whether x25519_base_uniform clamps internally or expects an
// already-clamped scalar. This port clamps internally, so any 32-byte
// value — in particular a raw hash output — can be passed directly, per
// the spec's "accepts any 32-byte scalar" phrasing.
func clamp(scalar *[32]byte) {
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
}

// BaseUniform implements x25519_base_uniform: it maps an arbitrary
// 32-byte scalar to the encoding of scalar*B, where B is the base point.
// The scalar is clamped internally and may be secret; the multiplication
// runs in constant time.
func BaseUniform(scalarBytes *[32]byte) [32]byte {
	var k [32]byte
	copy(k[:], scalarBytes[:])
	clamp(&k)

	var p edwards25519.Point
	p.ScalarMultConstantTime(edwards25519.Generator(), &k)

	var out [32]byte
	copy(out[:], p.Encode())
	return out
}

// ScalarReduce implements x25519_scalar_reduce: it reduces a 64-byte
// wide value mod the group order and returns the canonical 32-byte
// little-endian scalar. Safe to call on secret nonces; see
// internal/scalar.Reduce.
func ScalarReduce(wide *[64]byte) [32]byte {
	var out [32]byte
	scalar.Reduce(&out, wide)
	return out
}

// Sign implements x25519_sign: s = secretNonce - challenge*secretScalar
// (mod l), the response half of a signature. secretNonce and
// secretScalar carry secret key material; both are clamped here exactly
// as BaseUniform clamps, so the response matches the public nonce and
// public key BaseUniform derived from the same raw values. A clamped
// scalar need not be less than l; challenge is always public and is
// reduced mod l here the same way a wide nonce would be, by embedding it
// in a 64-byte buffer with a zero high half.
//
// The combinator itself runs through scalar.MulSubtract, a fixed,
// branch-free radix-2^21 carry chain rather than the math/big-backed
// Scalar type, since secretNonce and secretScalar are secret.
func Sign(challenge, secretNonce, secretScalar *[32]byte) [32]byte {
	var wideChallenge [64]byte
	copy(wideChallenge[:32], challenge[:])
	var reducedChallenge [32]byte
	scalar.Reduce(&reducedChallenge, &wideChallenge)

	var r, a [32]byte
	copy(r[:], secretNonce[:])
	copy(a[:], secretScalar[:])
	clamp(&r)
	clamp(&a)
	defer wipe.Bytes(r[:])
	defer wipe.Bytes(a[:])

	return scalar.MulSubtract(&r, &reducedChallenge, &a)
}

// Verify implements x25519_verify: it checks that s*B + challenge*A
// equals R, where A is the public key and R is the public nonce carried
// in the signature. It returns false for any malformed encoding rather
// than panicking, since signature bytes are untrusted input.
func Verify(response, challenge, publicNonce, publicKey *[32]byte) bool {
	s := scalar.New()
	if _, err := s.SetCanonicalBytes(response[:]); err != nil {
		return false
	}

	var wideChallenge [64]byte
	copy(wideChallenge[:32], challenge[:])
	var reducedChallenge [32]byte
	scalar.Reduce(&reducedChallenge, &wideChallenge)
	c := scalar.New()
	if _, err := c.SetCanonicalBytes(reducedChallenge[:]); err != nil {
		return false
	}

	R, err := edwards25519.Decode(publicNonce[:])
	if err != nil {
		return false
	}
	A, err := edwards25519.Decode(publicKey[:])
	if err != nil {
		return false
	}

	var sBytes, cBytes [32]byte
	copy(sBytes[:], s.Bytes())
	copy(cBytes[:], c.Bytes())

	var sB, cA, rhs edwards25519.Point
	sB.ScalarMult(edwards25519.Generator(), &sBytes)
	cA.ScalarMult(A, &cBytes)
	rhs.Add(&sB, &cA)

	return rhs.Equal(R) == 1
}
