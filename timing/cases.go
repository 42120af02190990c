package timing

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import "math/rand"

// Case is a pair of equal-length inputs whose processing times are compared.
// B is always A with a single bit flipped, the smallest possible input
// difference.
type Case struct {
	Name string
	A, B []byte
}

// DefaultCases returns the standard input corpus for a 64-byte block: the
// degenerate patterns plus a fixed-seed random block, each against its
// one-bit neighbour.
func DefaultCases() []Case {
	fill := func(b byte) []byte {
		blk := make([]byte, 64)
		for i := range blk {
			blk[i] = b
		}
		return blk
	}
	random := make([]byte, 64)
	rand.New(rand.NewSource(42)).Read(random)

	cases := []Case{
		{Name: "zeros vs bit-flip", A: fill(0x00)},
		{Name: "ones vs bit-flip", A: fill(0xFF)},
		{Name: "alternating vs bit-flip", A: fill(0xAA)},
		{Name: "random vs bit-flip", A: random},
	}
	for i := range cases {
		b := append([]byte{}, cases[i].A...)
		b[0] ^= 0x01
		cases[i].B = b
	}
	return cases
}
