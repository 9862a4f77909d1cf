// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

//go:build !lithium_sponge_slow

package gimli

import "lithium/internal/watchdog"

// This file implements the RATE-aligned block fast path: whenever at
// least one full rate block is available at the current offset, XOR it
// directly into the first four state words and permute once per block,
// instead of looping byte by byte through AbsorbByte/Advance. Build with
// the lithium_sponge_slow tag to force the byte-granular path everywhere
// and confirm the two produce identical output.

func loadWord(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

func storeWord(p []byte, x uint32) {
	p[0] = byte(x)
	p[1] = byte(x >> 8)
	p[2] = byte(x >> 16)
	p[3] = byte(x >> 24)
}

// firstBlockLen is the number of bytes needed to bring the sponge to a
// rate-aligned offset.
func (g *Sponge) firstBlockLen() int {
	return (Rate - g.Offset) % Rate
}

func (g *Sponge) absorbBlocks(m []byte) {
	first := g.firstBlockLen()
	if len(m) >= Rate+first {
		g.absorbBytes(m[:first])
		m = m[first:]
		for len(m) >= Rate {
			for i := 0; i < Rate/4; i++ {
				g.State[i] ^= loadWord(m[4*i:])
			}
			m = m[Rate:]
			watchdog.Pet()
			Permute(&g.State)
		}
	}
	g.absorbBytes(m)
}

func (g *Sponge) encryptBlocks(c, m []byte) {
	first := g.firstBlockLen()
	if len(m) >= Rate+first {
		encryptBytes(g, c[:first], m[:first])
		c, m = c[first:], m[first:]
		for len(m) >= Rate {
			for i := 0; i < Rate/4; i++ {
				g.State[i] ^= loadWord(m[4*i:])
				storeWord(c[4*i:], g.State[i])
			}
			c, m = c[Rate:], m[Rate:]
			watchdog.Pet()
			Permute(&g.State)
		}
	}
	encryptBytes(g, c, m)
}

func (g *Sponge) decryptBlocks(m, c []byte) {
	first := g.firstBlockLen()
	if len(c) >= Rate+first {
		decryptBytes(g, m[:first], c[:first])
		m, c = m[first:], c[first:]
		for len(c) >= Rate {
			// m = state ^ c, then the re-absorb of m makes the new rate
			// exactly c; the two steps collapse into state := c.
			for i := 0; i < Rate/4; i++ {
				cw := loadWord(c[4*i:])
				storeWord(m[4*i:], g.State[i]^cw)
				g.State[i] = cw
			}
			m, c = m[Rate:], c[Rate:]
			watchdog.Pet()
			Permute(&g.State)
		}
	}
	decryptBytes(g, m, c)
}

func encryptBytes(g *Sponge, c, m []byte) {
	for i, b := range m {
		g.AbsorbByte(b)
		c[i] = g.SqueezeByte()
		g.Advance()
	}
}

func decryptBytes(g *Sponge, m, c []byte) {
	for i, b := range c {
		m[i] = b ^ g.SqueezeByte()
		g.AbsorbByte(m[i])
		g.Advance()
	}
}
