// Copyright (c) 2017 The Gimli authors.
// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

// Package gimli implements the Gimli permutation and the byte-granular
// duplex sponge built on top of it: absorb, squeeze, advance, and pad,
// plus aligned-block fast paths for both.
package gimli

// Words is the number of 32-bit words in the Gimli state (384 bits).
const Words = 12

// Rate is the sponge rate in bytes: the portion of the state that
// absorb/squeeze operate on. The remaining 8 words form the capacity.
const Rate = 16

// State is a little-endian 384-bit Gimli state, viewed as 12 32-bit words.
type State [Words]uint32

const rounds = 24

// Permute applies the 24-round Gimli permutation to s in place. The round
// structure is the published Gimli SP-box (Bernstein et al., NIST
// lightweight cryptography); this is a fixed, data-independent sequence
// of rotations, XORs, and round-constant injections, so it runs in time
// and memory-access pattern independent of the state's contents.
func Permute(s *State) {
	for round := rounds; round > 0; round-- {
		x := rotl(s[0], 24)
		y := rotl(s[4], 9)
		z := s[8]

		s[8] = x ^ (z << 1) ^ ((y & z) << 2)
		s[4] = y ^ x ^ ((x | z) << 1)
		s[0] = z ^ y ^ ((x & y) << 3)

		x = rotl(s[1], 24)
		y = rotl(s[5], 9)
		z = s[9]

		s[9] = x ^ (z << 1) ^ ((y & z) << 2)
		s[5] = y ^ x ^ ((x | z) << 1)
		s[1] = z ^ y ^ ((x & y) << 3)

		x = rotl(s[2], 24)
		y = rotl(s[6], 9)
		z = s[10]

		s[10] = x ^ (z << 1) ^ ((y & z) << 2)
		s[6] = y ^ x ^ ((x | z) << 1)
		s[2] = z ^ y ^ ((x & y) << 3)

		x = rotl(s[3], 24)
		y = rotl(s[7], 9)
		z = s[11]

		s[11] = x ^ (z << 1) ^ ((y & z) << 2)
		s[7] = y ^ x ^ ((x | z) << 1)
		s[3] = z ^ y ^ ((x & y) << 3)

		switch round & 3 {
		case 0: // small swap: pattern s...s...s... etc.
			s[0], s[1] = s[1], s[0]
			s[2], s[3] = s[3], s[2]
			s[0] ^= 0x9e377900 | uint32(round)
		case 2: // big swap: pattern ..S...S...S. etc.
			s[0], s[2] = s[2], s[0]
			s[1], s[3] = s[3], s[1]
		}
	}
}

func rotl(x uint32, n uint) uint32 {
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (32 - n))
}
