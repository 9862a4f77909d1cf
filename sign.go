// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package lithium

import (
	"crypto/rand"
	"fmt"

	"lithium/internal/gimli"
	"lithium/internal/wipe"
	"lithium/internal/x25519"
)

// Sizes of the values making up a signing keypair and a signature, all
// fixed per the scheme's X25519/Gimli parameters.
const (
	PrehashSize  = 64
	SignatureLen = 64
	PublicKeyLen = 32
	SecretKeyLen = 64
)

// GenerateKey creates a new signing keypair. The secret key is 64 bytes:
// a random 32-byte seed followed by the 32-byte public key. The caller
// is responsible for wiping the secret key when it is no longer needed.
func GenerateKey() (publicKey, secretKey []byte, err error) {
	secretKey = make([]byte, SecretKeyLen)
	if _, err := rand.Read(secretKey[:32]); err != nil {
		return nil, nil, fmt.Errorf("lithium: reading randomness: %w", err)
	}

	scalar := Hash(secretKey[:32], 32)
	var scalarArr [32]byte
	copy(scalarArr[:], scalar)
	pub := x25519.BaseUniform(&scalarArr)
	wipe.Bytes(scalar)
	wipe.Bytes(scalarArr[:])

	copy(secretKey[32:], pub[:])
	publicKey = append([]byte(nil), pub[:]...)
	return publicKey, secretKey, nil
}

// Prehash streams a message into the 64-byte digest that Sign and Verify
// operate on, so a signer need not buffer the whole message.
type Prehash struct {
	h Hasher
}

// NewPrehash returns an empty Prehash.
func NewPrehash() *Prehash { return &Prehash{} }

// Write absorbs p into the prehash.
func (p *Prehash) Write(b []byte) (int, error) {
	return p.h.Write(b)
}

// Sum returns the 64-byte prehash digest. Like Hasher.Sum it finalizes a
// copy of the sponge state, so the receiver is left unmodified and Sum
// may be called more than once.
func (p *Prehash) Sum() [PrehashSize]byte {
	var out [PrehashSize]byte
	copy(out[:], p.h.Sum(nil, PrehashSize))
	return out
}

// Sign produces a signature over prehash (the 64-byte output of a
// Prehash, or Hash(m, 64) for a buffered message) using secretKey, a
// SecretKeyLen-byte value as produced by GenerateKey.
//
// The secret nonce is derived deterministically by hashing the seed's
// expansion together with prehash, never from randomness, so Sign is
// deterministic: the same secretKey and message always produce the same
// signature bytes.
func Sign(prehash []byte, secretKey []byte) []byte {
	if len(secretKey) != SecretKeyLen {
		panic("lithium: invalid secret key length")
	}
	if len(prehash) != PrehashSize {
		panic("lithium: invalid prehash length")
	}
	seed := secretKey[:32]
	publicKey := secretKey[32:]

	az := Hash(seed, 64)
	secretScalar := az[:32]
	z := az[32:]
	defer wipe.Bytes(secretScalar)
	defer wipe.Bytes(z)

	var nonceInput []byte
	nonceInput = append(nonceInput, z...)
	nonceInput = append(nonceInput, prehash...)
	defer wipe.Bytes(nonceInput)
	nonceWide := Hash(nonceInput, 64)
	defer wipe.Bytes(nonceWide)

	var wide [64]byte
	copy(wide[:], nonceWide)
	defer wipe.Bytes(wide[:])
	reducedNonce := x25519.ScalarReduce(&wide)
	defer wipe.Bytes(reducedNonce[:])

	R := x25519.BaseUniform(&reducedNonce)

	var g gimli.Sponge
	g.Absorb(R[:])
	g.Absorb(publicKey)
	g.Absorb(prehash)
	g.Pad()
	challenge := make([]byte, 32)
	g.Squeeze(challenge)

	var challengeArr, secretScalarArr [32]byte
	copy(challengeArr[:], challenge)
	copy(secretScalarArr[:], secretScalar)
	defer wipe.Bytes(secretScalarArr[:])

	s := x25519.Sign(&challengeArr, &reducedNonce, &secretScalarArr)

	sig := make([]byte, SignatureLen)
	copy(sig[:32], R[:])
	copy(sig[32:], s[:])
	return sig
}

// Verify reports whether sig is a valid signature over prehash for
// publicKey. It is not constant-time in sig: a non-canonical s, or an R
// or public key that does not decode to a curve point, is rejected by an
// early return before the x25519_verify equation check, and the scalar
// multiplications in that check take time that depends on s.
func Verify(sig, prehash, publicKey []byte) bool {
	if len(sig) != SignatureLen || len(publicKey) != PublicKeyLen {
		return false
	}
	R := sig[:32]
	s := sig[32:]

	var g gimli.Sponge
	g.Absorb(R)
	g.Absorb(publicKey)
	g.Absorb(prehash)
	g.Pad()
	challenge := make([]byte, 32)
	g.Squeeze(challenge)

	var responseArr, challengeArr, nonceArr, pubArr [32]byte
	copy(responseArr[:], s)
	copy(challengeArr[:], challenge)
	copy(nonceArr[:], R)
	copy(pubArr[:], publicKey)

	return x25519.Verify(&responseArr, &challengeArr, &nonceArr, &pubArr)
}
