// Copyright (c) 2017 George Tankersley. All rights reserved.
// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards25519 implements the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// underlying the signature scheme, using extended (X:Y:Z:T) coordinates
// per Hisil-Wong-Carter-Dawson 2008. The signature verification equation
// needs true point equality (the sign of x matters), which a u-coordinate
// Montgomery ladder cannot give; this package supplies that, and also the
// constant-time base-point multiply behind internal/x25519.
package edwards25519

import (
	"errors"

	"lithium/internal/field"
)

var (
	d      field.Elem
	d2     field.Elem
	sqrtM1 field.Elem
	baseX  field.Elem
	baseY  field.Elem
	feOne  field.Elem
)

func init() {
	// d = -121665/121666 mod p, the curve's twisted-Edwards constant.
	d.Set(field.FromDecimal("37095705934669439343138083508754565189542113879843219016388785533085940283555"))
	d2.Add(&d, &d)
	// sqrtM1 = 2^((p-1)/4) mod p, the standard square root of -1 in this field.
	sqrtM1.Set(field.FromDecimal("19681161376707505956807079304988542015446066515923890162744021073123829784752"))
	baseX.Set(field.FromDecimal("15112221349535400772501151409588531511454012693041857206046113283949847762202"))
	baseY.Set(field.FromDecimal("46316835694926478169428394003475163141307993866256225615783033603165251855960"))
	feOne.One()
}

// Point is a curve point in extended coordinates: x = X/Z, y = Y/Z,
// x*y = T/Z. The zero value is not a valid point; use Identity.
type Point struct {
	X, Y, Z, T field.Elem
}

// Identity returns the neutral element (0, 1).
func Identity() *Point {
	p := &Point{}
	p.X.Zero()
	p.Y.One()
	p.Z.One()
	p.T.Zero()
	return p
}

// Generator returns the base point of the prime-order subgroup.
func Generator() *Point {
	p := &Point{}
	p.X.Set(&baseX)
	p.Y.Set(&baseY)
	p.Z.Set(&feOne)
	p.T.Mul(&baseX, &baseY)
	return p
}

// Set sets v = u and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Add sets v = p1+p2 using the unified "add-2008-hwcd-3" formula and
// returns v. v may alias p1 or p2.
func (v *Point) Add(p1, p2 *Point) *Point {
	var tmp1, tmp2, A, B, C, D, E, F, G, H field.Elem
	tmp1.Sub(&p1.Y, &p1.X)
	tmp2.Sub(&p2.Y, &p2.X)
	A.Mul(&tmp1, &tmp2)
	tmp1.Add(&p1.Y, &p1.X)
	tmp2.Add(&p2.Y, &p2.X)
	B.Mul(&tmp1, &tmp2)
	tmp1.Mul(&p1.T, &p2.T)
	C.Mul(&tmp1, &d2)
	tmp1.Mul(&p1.Z, &p2.Z)
	D.Add(&tmp1, &tmp1)
	E.Sub(&B, &A)
	F.Sub(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A)
	v.X.Mul(&E, &F)
	v.Y.Mul(&G, &H)
	v.T.Mul(&E, &H)
	v.Z.Mul(&F, &G)
	return v
}

// Sub sets v = p1-p2 and returns v. v may alias p1 or p2.
func (v *Point) Sub(p1, p2 *Point) *Point {
	var tmp1, tmp2, A, B, C, D, E, F, G, H field.Elem
	tmp1.Sub(&p1.Y, &p1.X)
	tmp2.Add(&p2.Y, &p2.X)
	A.Mul(&tmp1, &tmp2)
	tmp1.Add(&p1.Y, &p1.X)
	tmp2.Sub(&p2.Y, &p2.X)
	B.Mul(&tmp1, &tmp2)
	tmp1.Mul(&p1.T, &p2.T)
	C.Mul(&tmp1, &d2)
	tmp1.Mul(&p1.Z, &p2.Z)
	D.Add(&tmp1, &tmp1)
	E.Sub(&B, &A)
	F.Add(&D, &C)
	G.Sub(&D, &C)
	H.Add(&B, &A)
	v.X.Mul(&E, &F)
	v.Y.Mul(&G, &H)
	v.T.Mul(&E, &H)
	v.Z.Mul(&F, &G)
	return v
}

// Double sets v = 2*p using the HWCD Section 3.3 dedicated doubling
// formula and returns v. v may alias p.
func (v *Point) Double(p *Point) *Point {
	var A, B, C, D, E, F, G, H, t0 field.Elem
	A.Square(&p.X)
	B.Square(&p.Y)
	C.Square(&p.Z)
	C.Add(&C, &C)
	D.Neg(&A)
	t0.Add(&p.X, &p.Y)
	t0.Square(&t0)
	E.Sub(&t0, &A)
	E.Sub(&E, &B)
	G.Add(&D, &B)
	F.Sub(&G, &C)
	H.Sub(&D, &B)
	v.X.Mul(&E, &F)
	v.Y.Mul(&G, &H)
	v.T.Mul(&E, &H)
	v.Z.Mul(&F, &G)
	return v
}

// Neg sets v = -p and returns v.
func (v *Point) Neg(p *Point) *Point {
	v.X.Neg(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	v.T.Neg(&p.T)
	return v
}

// Equal reports whether v and u represent the same point, comparing via
// cross-multiplication so neither side needs to be put in affine form.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Elem
	t1.Mul(&v.X, &u.Z)
	t2.Mul(&u.X, &v.Z)
	t3.Mul(&v.Y, &u.Z)
	t4.Mul(&u.Y, &v.Z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// ScalarMult sets v = k*p for k a little-endian scalar and returns v.
// This is a plain double-and-add from the lowest bit up; it is not
// constant-time. The scalars it is used on in this module (a public
// challenge and a public response) are not secret, so this tradeoff
// against a windowed constant-time ladder is acceptable here; the
// scalar multiplications with a secret input, the base-point multiplies
// in internal/x25519.BaseUniform, instead go through
// ScalarMultConstantTime.
func (v *Point) ScalarMult(p *Point, k *[32]byte) *Point {
	acc := Identity()
	base := new(Point).Set(p)
	for i := 0; i < 256; i++ {
		bit := (k[i/8] >> uint(i%8)) & 1
		if bit == 1 {
			acc.Add(acc, base)
		}
		base.Double(base)
	}
	*v = *acc
	return v
}

// selectPoint sets v to a if cond == 1, or to b if cond == 0. cond must be
// 0 or 1. selectPoint runs in constant time.
func selectPoint(v, a, b *Point, cond int) {
	field.Select(&v.X, &a.X, &b.X, cond)
	field.Select(&v.Y, &a.Y, &b.Y, cond)
	field.Select(&v.Z, &a.Z, &b.Z, cond)
	field.Select(&v.T, &a.T, &b.T, cond)
}

// ScalarMultConstantTime sets v = k*p for k a little-endian scalar and
// returns v, using double-and-add-always: the same sequence of point
// operations runs for every bit of k, with the bit value only choosing
// (via a constant-time select) which of the two candidate results is
// kept. Unlike ScalarMult, this is safe to call with a secret k; it is
// used for the one secret-scalar multiplication this module performs,
// the base-point multiply inside x25519_base_uniform.
func (v *Point) ScalarMultConstantTime(p *Point, k *[32]byte) *Point {
	acc := Identity()
	for i := 255; i >= 0; i-- {
		bit := int((k[i/8] >> uint(i%8)) & 1)
		doubled := new(Point).Double(acc)
		added := new(Point).Add(doubled, p)
		selectPoint(acc, added, doubled, bit)
	}
	*v = *acc
	return v
}

// feSqrtCandidate sets out = z^((p-5)/8), the exponent used by the
// Ed25519 square-root-ratio trick in Decode. Ported from the addition
// chain in x/crypto/ed25519/internal/edwards25519's fePow22523.
func feSqrtCandidate(out, z *field.Elem) {
	var t0, t1, t2 field.Elem

	t0.Square(z)
	t1.Square(&t0)
	t1.Square(&t1)
	t1.Mul(z, &t1)
	t0.Mul(&t0, &t1)
	t0.Square(&t0)
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 0; i < 4; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 0; i < 9; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)
	t2.Square(&t1)
	for i := 0; i < 19; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 0; i < 9; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 0; i < 49; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)
	t2.Square(&t1)
	for i := 0; i < 99; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 0; i < 49; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t0.Square(&t0)
	t0.Square(&t0)
	out.Mul(&t0, z)
}

// ErrInvalidEncoding is returned by Decode when the input is not the
// encoding of a point on the curve.
var ErrInvalidEncoding = errors.New("edwards25519: invalid point encoding")

// Encode returns the 32-byte compressed encoding of p: the little-endian
// encoding of its affine y-coordinate, with the sign of its affine
// x-coordinate packed into the top bit.
func (p *Point) Encode() []byte {
	var x, y, zinv field.Elem
	zinv.Invert(&p.Z)
	x.Mul(&p.X, &zinv)
	y.Mul(&p.Y, &zinv)

	out := y.Bytes()
	xb := x.Bytes()
	out[31] &= 0x7f
	out[31] |= (xb[0] & 1) << 7
	return out
}

// Decode parses the 32-byte compressed point encoding produced by
// Encode. It returns ErrInvalidEncoding if the bytes do not encode a
// point on the curve.
func Decode(enc []byte) (*Point, error) {
	if len(enc) != 32 {
		return nil, ErrInvalidEncoding
	}
	sign := (enc[31] >> 7) & 1
	var yb [32]byte
	copy(yb[:], enc)
	yb[31] &= 0x7f

	var y, y2, u, v, x field.Elem
	y.SetBytes(yb[:])
	y2.Square(&y)

	u.Sub(&y2, &feOne)       // u = y^2 - 1
	v.Mul(&y2, &d)
	v.Add(&v, &feOne)        // v = d*y^2 + 1

	var v3, v7 field.Elem
	v3.Square(&v)
	v3.Mul(&v3, &v)  // v^3
	v7.Square(&v3)
	v7.Mul(&v7, &v) // v^7

	var uv3, uv7 field.Elem
	uv3.Mul(&u, &v3)
	uv7.Mul(&u, &v7)
	feSqrtCandidate(&uv7, &uv7)
	x.Mul(&uv3, &uv7) // candidate root

	var check, uneg field.Elem
	check.Square(&x)
	check.Mul(&check, &v)
	uneg.Neg(&u)

	correct := check.Equal(&u)
	flipped := check.Equal(&uneg)

	if correct|flipped == 0 {
		return nil, ErrInvalidEncoding
	}

	var xPrime field.Elem
	xPrime.Mul(&x, &sqrtM1)
	field.Select(&x, &xPrime, &x, flipped)

	if x.IsZero() == 1 && sign == 1 {
		return nil, ErrInvalidEncoding
	}

	xb := x.Bytes()
	if (xb[0]&1) != sign {
		x.Neg(&x)
	}

	p := &Point{}
	p.X.Set(&x)
	p.Y.Set(&y)
	p.Z.Set(&feOne)
	p.T.Mul(&x, &y)
	return p, nil
}
