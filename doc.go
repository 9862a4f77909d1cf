// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

// Package lithium implements a small, portable cryptographic library built
// on a single permutation: the Gimli 384-bit permutation drives a duplex
// sponge, which in turn provides a hash function, an authenticated
// encryption scheme, and the prehashing for a Schnorr-style signature
// scheme over Curve25519.
//
// The hard part of this package lives one level down, in
// internal/field (constant-time GF(2^255-19) arithmetic),
// internal/gimli (the permutation and sponge), internal/edwards25519 and
// internal/x25519 (the scalar multiplication backing the signature
// scheme), and internal/scalar (arithmetic mod the group order). This
// package composes those into the three public constructions: Hash,
// Seal/Open, and GenerateKey/Sign/Verify.
package lithium
