// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build lithium_wbits16

package field

import "crypto/subtle"

// W is the limb width in bits for this build: the fully portable,
// smallest-limb configuration, selected with the lithium_wbits16 build
// tag. Produces identical results to the default 32-bit-limb build for
// every public operation.
const W = 16

// NLimbs is the number of limbs representing a field element.
const NLimbs = 16

type limb = uint16

// Elem is an element of GF(2^255-19). See the W=32 build for full docs;
// the two variants share the same algorithms, specialized per limb width.
type Elem [NLimbs]limb

func (z *Elem) Zero() *Elem {
	*z = Elem{}
	return z
}

func (z *Elem) One() *Elem {
	*z = Elem{1}
	return z
}

func (z *Elem) Set(x *Elem) *Elem {
	*z = *x
	return z
}

func (z *Elem) SetBytes(x []byte) *Elem {
	if len(x) != 32 {
		panic("field: invalid element length")
	}
	for i := 0; i < NLimbs; i++ {
		o := i * (W / 8)
		z[i] = limb(x[o]) | limb(x[o+1])<<8
	}
	return z
}

func (z *Elem) Bytes() []byte {
	var t Elem = *z
	t.canon()
	out := make([]byte, 32)
	for i := 0; i < NLimbs; i++ {
		o := i * (W / 8)
		v := t[i]
		out[o] = byte(v)
		out[o+1] = byte(v >> 8)
	}
	return out
}

func adc(carry *limb, a, b limb) limb {
	t := uint32(a) + uint32(b) + uint32(*carry)
	*carry = limb(t >> W)
	return limb(t)
}

func mac(carry *limb, a, b, c limb) limb {
	t := uint32(b)*uint32(c) + uint32(a) + uint32(*carry)
	*carry = limb(t >> W)
	return limb(t)
}

func propagate(x *Elem, carry limb) {
	carry <<= 1
	carry |= x[NLimbs-1] >> (W - 1)
	carry *= 19
	x[NLimbs-1] &^= 1 << (W - 1)
	for i := 0; i < NLimbs; i++ {
		x[i] = adc(&carry, x[i], 0)
	}
}

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

func (z *Elem) Sub(x, y *Elem) *Elem {
	var out Elem
	carry := int32(-76)
	for i := 0; i < NLimbs; i++ {
		carry = carry + int32(x[i]) - int32(y[i])
		out[i] = limb(carry)
		carry >>= W
	}
	propagate(&out, limb(carry+2))
	*z = out
	return z
}

func (z *Elem) Neg(x *Elem) *Elem {
	var zero Elem
	return z.Sub(&zero, x)
}

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

func (z *Elem) Mul(x, y *Elem) *Elem {
	mulN(z, x, y[:])
	return z
}

func (z *Elem) MulSmall(x *Elem, w uint32) *Elem {
	mulN(z, x, []limb{limb(w)})
	return z
}

func (z *Elem) Square(x *Elem) *Elem {
	return z.Mul(x, x)
}

func (z *Elem) Invert(x *Elem) *Elem {
	b := *x
	a := *x
	for i := 253; i >= 0; i-- {
		a.Square(&a)
		if i >= 8 || ((0xeb>>uint(i))&1) != 0 {
			a.Mul(&a, &b)
		}
	}
	*z = a
	return z
}

func (z *Elem) canon() limb {
	carry := limb(19)
	for i := 0; i < NLimbs; i++ {
		z[i] = adc(&carry, z[i], 0)
	}
	propagate(z, carry)

	carrySub := int32(-19)
	var res limb
	for i := 0; i < NLimbs; i++ {
		carrySub += int32(z[i])
		z[i] = limb(carrySub)
		res |= z[i]
		carrySub >>= W
	}
	return limb((uint32(res) - 1) >> W)
}

func (z *Elem) IsZero() int {
	var t Elem = *z
	mask := t.canon()
	return int(mask & 1)
}

func (z *Elem) Equal(x *Elem) int {
	a, b := z.Bytes(), x.Bytes()
	return subtle.ConstantTimeCompare(a, b)
}

func Select(z, a, b *Elem, cond int) {
	mask := limb(0) - limb(cond&1)
	for i := 0; i < NLimbs; i++ {
		z[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
}

func CondSwap(a, b *Elem, cond int) {
	mask := limb(0) - limb(cond&1)
	for i := 0; i < NLimbs; i++ {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}
