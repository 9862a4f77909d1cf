// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package gimli

import "lithium/internal/watchdog"

// Sponge is a Gimli duplex sponge: a 384-bit State plus a byte offset into
// the current rate block. Between operations 0 <= Offset < Rate. The zero
// value is a valid, freshly initialized sponge.
type Sponge struct {
	State  State
	Offset int
}

// byteAt returns a pointer-free little-endian byte view of the state,
// independent of host endianness: byte 0 is the least significant byte of
// word 0, as required regardless of how the host stores uint32 in memory.
func byteAt(s *State, i int) byte {
	w := s[i/4]
	return byte(w >> (uint(i%4) * 8))
}

func xorByteAt(s *State, i int, x byte) {
	s[i/4] ^= uint32(x) << (uint(i%4) * 8)
}

// loadStateWord is the little-endian word load used by InitAEAD, which is
// present in both build configurations; the fast-path block loops in
// sponge_fast.go use their own loadWord.
func loadStateWord(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

// AbsorbByte XORs x into the sponge state at the current offset.
func (g *Sponge) AbsorbByte(x byte) {
	xorByteAt(&g.State, g.Offset, x)
}

// SqueezeByte reads the byte of sponge state at the current offset.
func (g *Sponge) SqueezeByte() byte {
	return byteAt(&g.State, g.Offset)
}

// Advance moves to the next byte of the rate, permuting and resetting the
// offset to 0 when the rate is exhausted.
func (g *Sponge) Advance() {
	g.Offset++
	if g.Offset == Rate {
		watchdog.Pet()
		Permute(&g.State)
		g.Offset = 0
	}
}

// InitAEAD loads a 16-byte nonce into words 0-3 and a 32-byte key into
// words 4-11, permutes once, and resets Offset to 0. This is the AEAD
// duplex's init step; nonce and key are each exactly 4 and 8 words.
func (g *Sponge) InitAEAD(nonce, key []byte) {
	for i := 0; i < 4; i++ {
		g.State[i] = loadStateWord(nonce[4*i:])
	}
	for i := 0; i < 8; i++ {
		g.State[4+i] = loadStateWord(key[4*i:])
	}
	Permute(&g.State)
	g.Offset = 0
}

// FinalAD pads and forces a permutation, domain-separating associated
// data from the payload that follows.
func (g *Sponge) FinalAD() {
	g.Pad()
	g.Offset = Rate - 1
	g.Advance()
}

// Encrypt XOR-absorbs m into the sponge and writes the resulting
// ciphertext to c, which may alias m.
func (g *Sponge) Encrypt(c, m []byte) {
	g.encryptBlocks(c, m)
}

// Decrypt reads ciphertext c, recovers plaintext into m (which may alias
// c), and absorbs the plaintext back into the sponge.
func (g *Sponge) Decrypt(m, c []byte) {
	g.decryptBlocks(m, c)
}

// FinalTag pads and squeezes len(t) tag bytes.
func (g *Sponge) FinalTag(t []byte) {
	g.Pad()
	g.Squeeze(t)
}

// CheckTag pads, then compares len(t) tag bytes read from the sponge
// against t in constant time, returning true iff they match.
func (g *Sponge) CheckTag(t []byte) bool {
	g.Pad()
	g.Offset = Rate - 1
	var mismatch byte
	for i := range t {
		g.Advance()
		mismatch |= t[i] ^ g.SqueezeByte()
	}
	return mismatch == 0
}

// Pad applies the sponge's domain-separating padding: a 0x01 byte XORed in
// at the current offset, plus a 0x01 byte XORed into the top byte of the
// last state word.
func (g *Sponge) Pad() {
	g.AbsorbByte(0x01)
	g.State[Words-1] ^= 0x01000000
}

// absorbBytes is the byte-granular slow path, always correct regardless of
// alignment; the block fast path in sponge_fast.go produces identical
// results when the caller has a full rate-sized, offset-aligned block.
func (g *Sponge) absorbBytes(m []byte) {
	for _, b := range m {
		g.AbsorbByte(b)
		g.Advance()
	}
}

// Absorb XORs m into the sponge, advancing (and permuting at rate
// boundaries) after each byte. Any chunking of a message across multiple
// Absorb calls is equivalent to absorbing the concatenation in one call.
func (g *Sponge) Absorb(m []byte) {
	g.absorbBlocks(m)
}

// Squeeze reads len(out) bytes from the sponge starting at Rate-1, i.e. it
// always forces a permutation before producing the first output byte. It
// is used only at the tail of a hash or AEAD finalization, where the
// sponge is always first padded.
func (g *Sponge) Squeeze(out []byte) {
	g.Offset = Rate - 1
	for i := range out {
		g.Advance()
		out[i] = g.SqueezeByte()
	}
}
