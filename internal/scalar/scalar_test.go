// Copyright 2016 The Go Authors. All rights reserved.
// Copyright 2019 Henry de Valence. All rights reserved.
// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "testing"

func TestAddSubMulRoundTrip(t *testing.T) {
	a := New()
	a.SetUniformBytes(make([]byte, 64))
	one := New()
	onesBytes := make([]byte, 64)
	onesBytes[0] = 1
	one.SetUniformBytes(onesBytes)

	var sum Scalar
	sum.Add(a, one)
	var back Scalar
	back.Sub(&sum, one)
	if back.Equal(a) != 1 {
		t.Error("Sub(Add(a,1),1) != a")
	}
}

func TestMulSubtract(t *testing.T) {
	a, b, c := New(), New(), New()
	ab := make([]byte, 64)
	ab[0] = 5
	a.SetUniformBytes(ab)
	bb := make([]byte, 64)
	bb[0] = 3
	b.SetUniformBytes(bb)
	cb := make([]byte, 64)
	cb[0] = 7
	c.SetUniformBytes(cb)

	var got Scalar
	got.MulSubtract(a, b, c)

	var bc, want Scalar
	bc.Mul(b, c)
	want.Sub(a, &bc)

	if got.Equal(&want) != 1 {
		t.Error("MulSubtract(a,b,c) != Sub(a, Mul(b,c))")
	}
}

func TestMulSubtractConstantTimeAgreesWithScalar(t *testing.T) {
	cases := []struct{ a, b, c int64 }{
		{5, 3, 7},
		{0, 1, 1},
		{1, 0, 9999},
		{123456789, 987654321, 42},
	}
	for _, tc := range cases {
		var aArr, bArr, cArr [32]byte
		aArr[0], aArr[1], aArr[2], aArr[3] = byte(tc.a), byte(tc.a>>8), byte(tc.a>>16), byte(tc.a>>24)
		bArr[0], bArr[1], bArr[2], bArr[3] = byte(tc.b), byte(tc.b>>8), byte(tc.b>>16), byte(tc.b>>24)
		cArr[0], cArr[1], cArr[2], cArr[3] = byte(tc.c), byte(tc.c>>8), byte(tc.c>>16), byte(tc.c>>24)

		got := MulSubtract(&aArr, &bArr, &cArr)

		a, b, c := New(), New(), New()
		if _, err := a.SetCanonicalBytes(aArr[:]); err != nil {
			t.Fatal(err)
		}
		if _, err := b.SetCanonicalBytes(bArr[:]); err != nil {
			t.Fatal(err)
		}
		if _, err := c.SetCanonicalBytes(cArr[:]); err != nil {
			t.Fatal(err)
		}
		var want Scalar
		want.MulSubtract(a, b, c)

		if string(got[:]) != string(want.Bytes()) {
			t.Errorf("MulSubtract(%d,%d,%d) = %x, want %x", tc.a, tc.b, tc.c, got, want.Bytes())
		}
	}
}

func TestSetCanonicalBytesRejectsOutOfRange(t *testing.T) {
	s := New()
	// l itself is not a valid canonical encoding (must be < l).
	if _, err := s.SetCanonicalBytes(lBytes[:]); err != ErrInvalidEncoding {
		t.Errorf("SetCanonicalBytes(l) = %v, want ErrInvalidEncoding", err)
	}
}

func TestSetCanonicalBytesRoundTrip(t *testing.T) {
	s := New()
	in := make([]byte, Len)
	in[0] = 0x2a
	got, err := s.SetCanonicalBytes(in)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bytes()[0] != 0x2a {
		t.Errorf("round trip changed the encoded value: %x", got.Bytes())
	}
}

func TestReduceIsIdempotentOnAlreadyReducedInput(t *testing.T) {
	var wide [64]byte
	wide[0] = 7
	var out [32]byte
	Reduce(&out, &wide)

	var wide2 [64]byte
	copy(wide2[:32], out[:])
	var out2 [32]byte
	Reduce(&out2, &wide2)

	if out != out2 {
		t.Errorf("Reduce(Reduce(x) || 0) != Reduce(x): %x vs %x", out2, out)
	}
}
