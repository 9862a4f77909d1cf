// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

//go:build lithium_sponge_slow

package gimli

// This build forces the byte-granular path unconditionally, for testing
// that the aligned-block fast path in sponge_fast.go is bit-identical to
// the reference implementation.

func (g *Sponge) absorbBlocks(m []byte) {
	g.absorbBytes(m)
}

func (g *Sponge) encryptBlocks(c, m []byte) {
	for i, b := range m {
		g.AbsorbByte(b)
		c[i] = g.SqueezeByte()
		g.Advance()
	}
}

func (g *Sponge) decryptBlocks(m, c []byte) {
	for i, b := range c {
		m[i] = b ^ g.SqueezeByte()
		g.AbsorbByte(m[i])
		g.Advance()
	}
}
