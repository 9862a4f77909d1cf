// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package lithium

import (
	"bytes"
	"encoding/hex"
	"testing"

	"lithium/internal/x25519"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	pub, sec, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	prehash := Hash([]byte("hello, signature scheme"), PrehashSize)
	sig := Sign(prehash, sec)
	if !Verify(sig, prehash, pub) {
		t.Fatal("Verify rejected a genuine signature")
	}
}

func TestSignDeterministic(t *testing.T) {
	pub, sec, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	_ = pub
	prehash := Hash([]byte("same message twice"), PrehashSize)

	sig1 := Sign(prehash, sec)
	sig2 := Sign(prehash, sec)
	if !bytes.Equal(sig1, sig2) {
		t.Errorf("Sign produced different signatures for identical inputs: %x vs %x", sig1, sig2)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	pub, sec, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	prehash := Hash([]byte("tamper me"), PrehashSize)
	sig := Sign(prehash, sec)

	if tampered := append([]byte(nil), sig...); func() bool {
		tampered[0] ^= 1
		return Verify(tampered, prehash, pub)
	}() {
		t.Error("Verify accepted a signature with a flipped bit")
	}

	if tamperedMsg := Hash([]byte("different message"), PrehashSize); Verify(sig, tamperedMsg, pub) {
		t.Error("Verify accepted a signature over a different prehash")
	}

	if tamperedPub := append([]byte(nil), pub...); func() bool {
		tamperedPub[0] ^= 1
		return Verify(sig, prehash, tamperedPub)
	}() {
		t.Error("Verify accepted a signature against a different public key")
	}
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	pub, sec, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	prehash := Hash([]byte("length check"), PrehashSize)
	sig := Sign(prehash, sec)

	if Verify(sig[:10], prehash, pub) {
		t.Error("Verify accepted a truncated signature")
	}
	if Verify(sig, prehash, pub[:10]) {
		t.Error("Verify accepted a truncated public key")
	}
}

func TestSeedKeygenVector(t *testing.T) {
	// Scenario 5: seed = 0x42*32 against a fixed, committed public key
	// and expanded secret key, so a regression in the hash or X25519
	// layer is caught instead of silently agreeing with itself; the
	// sign/verify/tamper checks below remain round-trip properties, per
	// spec's determinism/rejection requirements rather than fixed
	// constants of their own.
	wantPub, err := hex.DecodeString("814f90907c8daf485ad3c0eff6a3ab38f3234c088f2a985f5aba20ca00560a9a")
	if err != nil {
		t.Fatal(err)
	}
	wantSecret, err := hex.DecodeString("4242424242424242424242424242424242424242424242424242424242424242814f90907c8daf485ad3c0eff6a3ab38f3234c088f2a985f5aba20ca00560a9a")
	if err != nil {
		t.Fatal(err)
	}

	seed := bytes.Repeat([]byte{0x42}, 32)
	secretKey := make([]byte, SecretKeyLen)
	copy(secretKey[:32], seed)

	scalar := Hash(secretKey[:32], 32)
	var scalarArr [32]byte
	copy(scalarArr[:], scalar)
	pub := x25519.BaseUniform(&scalarArr)
	copy(secretKey[32:], pub[:])

	if !bytes.Equal(pub[:], wantPub) {
		t.Errorf("public key = %x, want %x", pub[:], wantPub)
	}
	if !bytes.Equal(secretKey, wantSecret) {
		t.Errorf("expanded secret key = %x, want %x", secretKey, wantSecret)
	}

	prehash := Hash(nil, PrehashSize)
	sig := Sign(prehash, secretKey)
	if !Verify(sig, prehash, pub[:]) {
		t.Fatal("seeded keypair failed to verify its own empty-message signature")
	}

	tampered := append([]byte(nil), sig...)
	tampered[0] ^= 1
	if Verify(tampered, prehash, pub[:]) {
		t.Error("seeded keypair verification accepted a tampered signature")
	}
}
