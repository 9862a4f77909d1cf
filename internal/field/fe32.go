// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !lithium_wbits16

// Package field implements arithmetic over GF(2^255-19), the field
// underlying X25519 and the curve used by the signature scheme.
//
// Elements are stored as NLimbs little-endian limbs of width W bits, where
// NLimbs*W = 256. This default build uses 32-bit limbs (NLimbs = 8); build
// with the lithium_wbits16 tag to select the 16-bit-limb, fully portable
// variant instead. Both variants produce identical results for every
// public operation; wbits affects only performance.
package field

import "crypto/subtle"

// W is the limb width in bits for this build.
const W = 32

// NLimbs is the number of limbs representing a field element.
const NLimbs = 8

type limb = uint32

// Elem is an element of GF(2^255-19), represented as NLimbs limbs in base
// 2^W, little-endian. Values are generally unreduced: after any public
// operation an Elem is bounded by 2^255 plus one limb of slack, i.e. < 2p.
// The zero value is a valid zero element.
type Elem [NLimbs]limb

// Zero sets z = 0 and returns z.
func (z *Elem) Zero() *Elem {
	*z = Elem{}
	return z
}

// One sets z = 1 and returns z.
func (z *Elem) One() *Elem {
	*z = Elem{1}
	return z
}

// Set sets z = x and returns z.
func (z *Elem) Set(x *Elem) *Elem {
	*z = *x
	return z
}

// SetBytes sets z to the value of the 32-byte little-endian encoding x and
// returns z. It panics if len(x) != 32; the value need not be canonical.
func (z *Elem) SetBytes(x []byte) *Elem {
	if len(x) != 32 {
		panic("field: invalid element length")
	}
	for i := 0; i < NLimbs; i++ {
		o := i * (W / 8)
		z[i] = limb(x[o]) | limb(x[o+1])<<8 | limb(x[o+2])<<16 | limb(x[o+3])<<24
	}
	return z
}

// Bytes returns the 32-byte little-endian canonical encoding of z. It does
// not modify z.
func (z *Elem) Bytes() []byte {
	var t Elem = *z
	t.canon()
	out := make([]byte, 32)
	for i := 0; i < NLimbs; i++ {
		o := i * (W / 8)
		v := t[i]
		out[o] = byte(v)
		out[o+1] = byte(v >> 8)
		out[o+2] = byte(v >> 16)
		out[o+3] = byte(v >> 24)
	}
	return out
}

// adc returns the low W bits of a+b+*carry and stores the high bits back
// into *carry.
func adc(carry *limb, a, b limb) limb {
	t := uint64(a) + uint64(b) + uint64(*carry)
	*carry = limb(t >> W)
	return limb(t)
}

// mac returns the low W bits of b*c+a+*carry and stores the high bits back
// into *carry. Multiply-accumulate with addend.
func mac(carry *limb, a, b, c limb) limb {
	t := uint64(b)*uint64(c) + uint64(a) + uint64(*carry)
	*carry = limb(t >> W)
	return limb(t)
}

// propagate folds the final carry of an add/mul back into limb 0 using the
// identity 2^255 = 19 (mod p). Leaves the result < 2^255 + one limb.
func propagate(x *Elem, carry limb) {
	carry <<= 1
	carry |= x[NLimbs-1] >> (W - 1)
	carry *= 19
	x[NLimbs-1] &^= 1 << (W - 1)
	for i := 0; i < NLimbs; i++ {
		x[i] = adc(&carry, x[i], 0)
	}
}

// Add sets z = x+y and returns z. z may alias x or y.
func (z *Elem) Add(x, y *Elem) *Elem {
	var out Elem
	var carry limb
	for i := 0; i < NLimbs; i++ {
		out[i] = adc(&carry, x[i], y[i])
	}
	propagate(&out, carry)
	*z = out
	return z
}

// Sub sets z = x-y and returns z. z may alias x or y.
func (z *Elem) Sub(x, y *Elem) *Elem {
	var out Elem
	carry := int64(-76) // -4*19, biases the running difference so propagate never sees a negative carry
	for i := 0; i < NLimbs; i++ {
		carry = carry + int64(x[i]) - int64(y[i])
		out[i] = limb(carry)
		carry >>= W // Go's signed right shift is always arithmetic; no portable fallback is needed
	}
	propagate(&out, limb(carry+2))
	*z = out
	return z
}

// Neg sets z = -x and returns z. z may alias x.
func (z *Elem) Neg(x *Elem) *Elem {
	var zero Elem
	return z.Sub(&zero, x)
}

// mulN is the shared schoolbook multiply: out = a * b[:nb], using the
// identity 2^256 = 38 (mod p) to fold the high half in a single pass.
func mulN(out *Elem, a *Elem, b []limb) {
	var accum [NLimbs * 2]limb
	var carry limb

	for i := 0; i < len(b); i++ {
		mand := b[i]
		carry = 0
		for j := 0; j < NLimbs; j++ {
			accum[i+j] = mac(&carry, accum[i+j], mand, a[j])
		}
		accum[i+NLimbs] = carry
	}

	carry = 0
	var res Elem
	for i := 0; i < NLimbs; i++ {
		res[i] = mac(&carry, accum[i], 38, accum[i+NLimbs])
	}
	propagate(&res, carry)
	*out = res
}

// Mul sets z = x*y and returns z. z may alias x or y.
func (z *Elem) Mul(x, y *Elem) *Elem {
	mulN(z, x, y[:])
	return z
}

// MulSmall sets z = x*w, where w is a small (less than 2^W) constant, and
// returns z. z may alias x.
func (z *Elem) MulSmall(x *Elem, w uint32) *Elem {
	mulN(z, x, []limb{limb(w)})
	return z
}

// Square sets z = x*x and returns z. z may alias x.
func (z *Elem) Square(x *Elem) *Elem {
	return z.Mul(x, x)
}

// Invert sets z = 1/x such that z*x = 1, and returns z. If x is congruent
// to 0 mod p the result is 0. Invert runs in time independent of x: it is a
// fixed square-and-multiply sequence driven by the constant bits of p-2,
// never by the value of x.
func (z *Elem) Invert(x *Elem) *Elem {
	b := *x
	a := *x
	// p-2 = 2^255 - 21 = 0x7f..ffeb; 254 fixed square/multiply steps.
	for i := 253; i >= 0; i-- {
		a.Square(&a)
		if i >= 8 || ((0xeb>>uint(i))&1) != 0 {
			a.Mul(&a, &b)
		}
	}
	*z = a
	return z
}

// canon reduces z in place to the unique residue in [0, p) and returns a
// limb mask that is all-ones iff that residue is zero, all-zeros otherwise.
func (z *Elem) canon() limb {
	carry := limb(19)
	for i := 0; i < NLimbs; i++ {
		z[i] = adc(&carry, z[i], 0)
	}
	propagate(z, carry)

	carrySub := int64(-19)
	var res limb
	for i := 0; i < NLimbs; i++ {
		carrySub += int64(z[i])
		z[i] = limb(carrySub)
		res |= z[i]
		carrySub >>= W
	}
	return limb((uint64(res) - 1) >> W)
}

// IsZero returns 1 if z is congruent to 0 mod p, and 0 otherwise. It does
// not modify z.
func (z *Elem) IsZero() int {
	var t Elem = *z
	mask := t.canon()
	return int(mask & 1)
}

// Equal returns 1 if z and x represent the same field element, and 0
// otherwise. Neither receiver is modified.
func (z *Elem) Equal(x *Elem) int {
	a, b := z.Bytes(), x.Bytes()
	return subtle.ConstantTimeCompare(a, b)
}

// Select sets z to a if cond == 1, or to b if cond == 0. cond must be 0 or
// 1; behavior is otherwise undefined. Select runs in constant time.
func Select(z, a, b *Elem, cond int) {
	mask := limb(0) - limb(cond&1)
	for i := 0; i < NLimbs; i++ {
		z[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
}

// CondSwap swaps a and b if cond == 1, and leaves them unchanged if cond ==
// 0. cond must be 0 or 1. CondSwap runs in constant time.
func CondSwap(a, b *Elem, cond int) {
	mask := limb(0) - limb(cond&1)
	for i := 0; i < NLimbs; i++ {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}
