// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

// Package wipe zeroes secret-bearing buffers on every exit path. Go has
// no standard volatile-write primitive the way C needs a hand-written
// memzero to defeat dead-store elimination; Bytes is a plain loop of
// zero stores through the slice and uses no compiler barrier of its own.
package wipe

// Bytes overwrites b with zeros.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
