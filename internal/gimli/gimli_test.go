// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package gimli

import (
	"bytes"
	"testing"
)

// referenceAbsorb is the byte-granular absorb loop, independent of
// whichever build tag selects absorbBlocks, used to check the active
// fast/slow path against a known-simple implementation.
func referenceAbsorb(g *Sponge, m []byte) {
	for _, b := range m {
		g.AbsorbByte(b)
		g.Advance()
	}
}

func TestAbsorbMatchesReference(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789abcdef"), 10)
	msg = append(msg, []byte("tail")...)

	var g1, g2 Sponge
	g1.Absorb(msg)
	referenceAbsorb(&g2, msg)

	if g1.State != g2.State || g1.Offset != g2.Offset {
		t.Fatalf("Absorb diverged from reference: %v/%d vs %v/%d", g1.State, g1.Offset, g2.State, g2.Offset)
	}
}

func TestAbsorbChunkingIndependence(t *testing.T) {
	msg := bytes.Repeat([]byte{0xA5}, 97)

	var whole Sponge
	whole.Absorb(msg)

	for _, chunkSize := range []int{1, 15, 16, 17, 40} {
		var g Sponge
		for i := 0; i < len(msg); i += chunkSize {
			end := i + chunkSize
			if end > len(msg) {
				end = len(msg)
			}
			g.Absorb(msg[i:end])
		}
		if g.State != whole.State || g.Offset != whole.Offset {
			t.Errorf("chunk size %d: Absorb result diverged from single-shot", chunkSize)
		}
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 32)
	nonce := bytes.Repeat([]byte{0x02}, 16)
	plaintext := []byte("the quick brown fox jumps over the lazy dog, 77 bytes of rate-crossing filler")

	var enc Sponge
	enc.InitAEAD(nonce, key)
	enc.FinalAD()
	ciphertext := make([]byte, len(plaintext))
	enc.Encrypt(ciphertext, plaintext)
	tag := make([]byte, 16)
	enc.FinalTag(tag)

	var dec Sponge
	dec.InitAEAD(nonce, key)
	dec.FinalAD()
	recovered := make([]byte, len(ciphertext))
	dec.Decrypt(recovered, ciphertext)
	if !dec.CheckTag(tag) {
		t.Fatal("CheckTag rejected a genuine tag")
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("decrypted plaintext = %q, want %q", recovered, plaintext)
	}
}

func TestCheckTagRejectsTamperedCiphertext(t *testing.T) {
	key := bytes.Repeat([]byte{0x03}, 32)
	nonce := bytes.Repeat([]byte{0x04}, 16)
	plaintext := []byte("payload bytes")

	var enc Sponge
	enc.InitAEAD(nonce, key)
	enc.FinalAD()
	ciphertext := make([]byte, len(plaintext))
	enc.Encrypt(ciphertext, plaintext)
	tag := make([]byte, 16)
	enc.FinalTag(tag)

	ciphertext[0] ^= 1

	var dec Sponge
	dec.InitAEAD(nonce, key)
	dec.FinalAD()
	recovered := make([]byte, len(ciphertext))
	dec.Decrypt(recovered, ciphertext)
	if dec.CheckTag(tag) {
		t.Fatal("CheckTag accepted a tag for tampered ciphertext")
	}
}

func TestPermuteIsNotIdentity(t *testing.T) {
	var s State
	before := s
	Permute(&s)
	if s == before {
		t.Fatal("Permute(zero state) left the state unchanged")
	}
}

// TestPermuteZeroStateReferenceVector checks the 24-round permutation
// applied to the all-zero state against a fixed, committed output,
// pinned here so a future change to the round function, the SP-box, or
// the round-constant schedule is caught instead of silently agreeing
// with itself.
func TestPermuteZeroStateReferenceVector(t *testing.T) {
	var s State
	Permute(&s)
	want := State{
		0x6467d8c4, 0x07dcf83b, 0x3b0bb0d4, 0x1b21364c,
		0x083431dc, 0x0efbbe8e, 0x0054e884, 0x648bd955,
		0x4a5db42e, 0xca0641cb, 0x8673d2c2, 0x2e30d809,
	}
	if s != want {
		t.Errorf("Permute(zero state) = %#08x, want %#08x", s, want)
	}
}
