// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package lithium

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestAEADRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		key   []byte
		nonce []byte
		ad    []byte
		m     []byte
	}{
		{"all-zero-empty", make([]byte, 32), make([]byte, 16), nil, nil},
		{"payload", bytes.Repeat([]byte{0x01}, 32), bytes.Repeat([]byte{0x0f}, 16), []byte("header"), []byte("payload bytes")},
	}

	for _, c := range cases {
		a := NewAEAD(c.key)
		sealed := a.Seal(nil, c.nonce, c.m, c.ad, DefaultTagSize)
		ciphertext := sealed[:len(sealed)-DefaultTagSize]
		tag := sealed[len(sealed)-DefaultTagSize:]

		opened, ok := a.Open(nil, c.nonce, ciphertext, tag, c.ad)
		if !ok {
			t.Errorf("%s: Open failed on a genuine ciphertext", c.name)
		}
		if !bytes.Equal(opened, c.m) {
			t.Errorf("%s: Open = %q, want %q", c.name, opened, c.m)
		}
	}
}

func TestAEADAuthenticity(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 32)
	nonce := bytes.Repeat([]byte{0x0f}, 16)
	ad := []byte("header")
	m := []byte("payload bytes")

	a := NewAEAD(key)
	sealed := a.Seal(nil, nonce, m, ad, DefaultTagSize)
	ciphertext := append([]byte(nil), sealed[:len(sealed)-DefaultTagSize]...)
	tag := append([]byte(nil), sealed[len(sealed)-DefaultTagSize:]...)

	tamper := func(name string, mutate func(c, tg, n, adc, k []byte) ([]byte, []byte, []byte, []byte, []byte)) {
		tc, tt, tn, tad, tk := mutate(
			append([]byte(nil), ciphertext...),
			append([]byte(nil), tag...),
			append([]byte(nil), nonce...),
			append([]byte(nil), ad...),
			append([]byte(nil), key...),
		)
		b := NewAEAD(tk)
		opened, ok := b.Open(nil, tn, tc, tt, tad)
		if ok {
			t.Errorf("%s: Open succeeded on tampered input", name)
		}
		for _, x := range opened {
			if x != 0 {
				t.Errorf("%s: Open left non-zero plaintext on failure: %x", name, opened)
				break
			}
		}
	}

	tamper("ciphertext", func(c, tg, n, adc, k []byte) ([]byte, []byte, []byte, []byte, []byte) {
		c[0] ^= 1
		return c, tg, n, adc, k
	})
	tamper("tag", func(c, tg, n, adc, k []byte) ([]byte, []byte, []byte, []byte, []byte) {
		tg[0] ^= 1
		return c, tg, n, adc, k
	})
	tamper("ad", func(c, tg, n, adc, k []byte) ([]byte, []byte, []byte, []byte, []byte) {
		adc[0] ^= 1
		return c, tg, n, adc, k
	})
	tamper("nonce", func(c, tg, n, adc, k []byte) ([]byte, []byte, []byte, []byte, []byte) {
		n[0] ^= 1
		return c, tg, n, adc, k
	})
	tamper("key", func(c, tg, n, adc, k []byte) ([]byte, []byte, []byte, []byte, []byte) {
		k[0] ^= 1
		return c, tg, n, adc, k
	})
}

func TestAEADMinTagSizeEnforced(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Seal with a short tag size did not panic")
		}
	}()
	a := NewAEAD(make([]byte, 32))
	a.Seal(nil, make([]byte, 16), []byte("m"), nil, 8)
}

func TestAEADAllZeroEmptyVector(t *testing.T) {
	// Scenario 3: k = 0x00*32, n = 0x00*16, ad = "", m = "" against a
	// fixed, committed tag, so a future change to the sponge or AEAD
	// composition is caught instead of silently agreeing with itself.
	wantTag, err := hex.DecodeString("b53d0cf3d80213b1c5ede7f3139f5279")
	if err != nil {
		t.Fatal(err)
	}

	a := NewAEAD(make([]byte, 32))
	sealed := a.Seal(nil, make([]byte, 16), nil, nil, DefaultTagSize)
	if len(sealed) != DefaultTagSize {
		t.Fatalf("all-zero empty AEAD produced %d bytes, want %d (tag only)", len(sealed), DefaultTagSize)
	}
	if !bytes.Equal(sealed, wantTag) {
		t.Errorf("all-zero empty AEAD tag = %x, want %x", sealed, wantTag)
	}

	opened, ok := a.Open(nil, make([]byte, 16), nil, sealed, nil)
	if !ok || len(opened) != 0 {
		t.Fatalf("round trip of the all-zero empty vector failed: ok=%v opened=%x", ok, opened)
	}
}

func TestAEADPayloadReferenceVector(t *testing.T) {
	// Scenario 4: k = 0x01*31+0x00, n = 0x0f*16, ad = "header",
	// m = "payload bytes" against fixed, committed ciphertext and tag
	// bytes.
	key := append(bytes.Repeat([]byte{0x01}, 31), 0x00)
	nonce := bytes.Repeat([]byte{0x0f}, 16)
	ad := []byte("header")
	m := []byte("payload bytes")

	wantCiphertext, err := hex.DecodeString("3b4014f15e607839b72d4ef929")
	if err != nil {
		t.Fatal(err)
	}
	wantTag, err := hex.DecodeString("236d645551f955ded47befaa0ba5b636")
	if err != nil {
		t.Fatal(err)
	}

	a := NewAEAD(key)
	sealed := a.Seal(nil, nonce, m, ad, DefaultTagSize)
	ciphertext := sealed[:len(sealed)-DefaultTagSize]
	tag := sealed[len(sealed)-DefaultTagSize:]

	if !bytes.Equal(ciphertext, wantCiphertext) {
		t.Errorf("ciphertext = %x, want %x", ciphertext, wantCiphertext)
	}
	if !bytes.Equal(tag, wantTag) {
		t.Errorf("tag = %x, want %x", tag, wantTag)
	}

	opened, ok := a.Open(nil, nonce, ciphertext, tag, ad)
	if !ok || !bytes.Equal(opened, m) {
		t.Fatalf("round trip of the payload reference vector failed: ok=%v opened=%q", ok, opened)
	}
}

// FuzzAEADRoundTrip checks that Seal/Open never panics on arbitrary
// key/nonce/ad/plaintext combinations and that a genuine ciphertext
// always opens back to the original plaintext.
func FuzzAEADRoundTrip(f *testing.F) {
	f.Add(make([]byte, 32), make([]byte, 16), []byte{}, []byte{})
	f.Add(bytes.Repeat([]byte{0x01}, 32), bytes.Repeat([]byte{0x0f}, 16), []byte("header"), []byte("payload bytes"))
	f.Add(bytes.Repeat([]byte{0xff}, 32), bytes.Repeat([]byte{0xff}, 16), []byte{}, bytes.Repeat([]byte{0xaa}, 200))

	f.Fuzz(func(t *testing.T, key, nonce, ad, m []byte) {
		if len(key) != KeySize || len(nonce) != NonceSize {
			return
		}
		a := NewAEAD(key)
		sealed := a.Seal(nil, nonce, m, ad, DefaultTagSize)
		ciphertext := sealed[:len(sealed)-DefaultTagSize]
		tag := sealed[len(sealed)-DefaultTagSize:]

		opened, ok := a.Open(nil, nonce, ciphertext, tag, ad)
		if !ok {
			t.Fatal("Open rejected a ciphertext Seal just produced")
		}
		if !bytes.Equal(opened, m) {
			t.Fatalf("Open = %x, want %x", opened, m)
		}
	})
}
