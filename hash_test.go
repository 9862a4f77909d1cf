// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

package lithium

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestHashIncrementality(t *testing.T) {
	msg := bytes.Repeat([]byte("message "), 50)
	whole := Hash(msg, 32)

	for _, chunkSize := range []int{1, 15, 16, 17, 4096} {
		h := NewHasher()
		for i := 0; i < len(msg); i += chunkSize {
			end := i + chunkSize
			if end > len(msg) {
				end = len(msg)
			}
			h.Write(msg[i:end])
		}
		got := h.Sum(nil, 32)
		if !bytes.Equal(got, whole) {
			t.Errorf("chunk size %d: digest diverged from single-shot Hash", chunkSize)
		}
	}
}

func TestHashOutputLengthExtension(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	short := Hash(msg, 16)
	long := Hash(msg, 32)
	if !bytes.Equal(short, long[:16]) {
		t.Errorf("Hash(m,16) is not a prefix of Hash(m,32): %x vs %x", short, long[:16])
	}
}

func TestHashDeterministic(t *testing.T) {
	msg := []byte("deterministic")
	a := Hash(msg, 32)
	b := Hash(msg, 32)
	if !bytes.Equal(a, b) {
		t.Error("Hash is not deterministic for identical input")
	}
}

func TestHashDistinguishesInputs(t *testing.T) {
	a := Hash([]byte("abc"), 32)
	b := Hash([]byte("abd"), 32)
	if bytes.Equal(a, b) {
		t.Error("Hash produced identical digests for distinct inputs")
	}
}

// TestHashReferenceVectors checks scenarios 1 and 2 against fixed,
// committed digests, computed once from this package's own sponge
// construction (absorb, pad, squeeze) and pinned here so a change to
// the permutation, sponge, or padding is caught even without an
// externally published test vector.
func TestHashReferenceVectors(t *testing.T) {
	cases := []struct {
		name string
		msg  []byte
		want string
	}{
		{"empty", nil, "27ae20e95fbc2bf01e972b0015eea431c20fc8818f25bc6dbe66232230db352f"},
		{"quick-brown-fox", []byte("The quick brown fox jumps over the lazy dog"), "db89c277a0bf1e586537951d350a955014b7c7528e97c3745a5f5f4190297552"},
	}
	for _, c := range cases {
		want, err := hex.DecodeString(c.want)
		if err != nil {
			t.Fatal(err)
		}
		if got := Hash(c.msg, 32); !bytes.Equal(got, want) {
			t.Errorf("%s: Hash = %x, want %x", c.name, got, want)
		}
	}
}

func TestHashEmptyAndLargeStreaming(t *testing.T) {
	if len(Hash(nil, 32)) != 32 {
		t.Error("Hash(nil, 32) did not produce a 32-byte digest")
	}

	big := bytes.Repeat([]byte{0xA5}, 1<<20)
	whole := Hash(big, 32)
	for _, chunkSize := range []int{1, 15, 16, 17, 4096} {
		h := NewHasher()
		for i := 0; i < len(big); i += chunkSize {
			end := i + chunkSize
			if end > len(big) {
				end = len(big)
			}
			h.Write(big[i:end])
		}
		got := h.Sum(nil, 32)
		if !bytes.Equal(got, whole) {
			t.Errorf("1 MiB stream with chunk size %d diverged from single-shot digest", chunkSize)
		}
	}
}

// FuzzHash checks that Hash never panics on arbitrary input, is
// deterministic, and that absorbing the same bytes through Write in two
// chunks always agrees with the single-shot digest.
func FuzzHash(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte("The quick brown fox jumps over the lazy dog"))
	f.Add(bytes.Repeat([]byte{0xff}, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		whole := Hash(data, 32)
		if len(whole) != 32 {
			t.Fatalf("Hash output length: got %d, want 32", len(whole))
		}
		if again := Hash(data, 32); !bytes.Equal(whole, again) {
			t.Fatalf("Hash is not deterministic: %x vs %x", whole, again)
		}

		h := NewHasher()
		mid := len(data) / 2
		h.Write(data[:mid])
		h.Write(data[mid:])
		if split := h.Sum(nil, 32); !bytes.Equal(split, whole) {
			t.Fatalf("split Write diverged from single-shot Hash: %x vs %x", split, whole)
		}
	})
}
