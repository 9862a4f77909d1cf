// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math/big"

// p is GF(2^255-19)'s modulus, used only by the big.Int helpers below.
var p, _ = new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)

// FromBig sets z to n mod p, interpreting n as an arbitrary-precision
// integer, and returns z. Used to build constants from known decimal or
// hex values; not constant-time and not meant for secret values.
func (z *Elem) FromBig(n *big.Int) *Elem {
	r := new(big.Int).Mod(n, p)
	b := make([]byte, 32)
	r.FillBytes(b)
	// FillBytes is big-endian; our wire format is little-endian.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return z.SetBytes(b)
}

// FromDecimal builds a field element from a base-10 string. It panics if s
// is not a valid decimal integer.
func FromDecimal(s string) *Elem {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field: not a valid decimal: " + s)
	}
	var e Elem
	return e.FromBig(n)
}
