package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import "encoding/binary"

// expandVector computes the schedule four words per step, the way the SIMD
// expansion kernels batch it: the sig0 and additive terms of a quad have no
// intra-quad dependency, only the sig1 terms of the upper two lanes do, so
// those are patched in after the lower two resolve. The result is identical
// to expand word for word.
func expandVector(w *[rounds]uint32, block []byte) {
	_ = block[BlockSize-1]
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	i := 16
	for ; i+4 <= rounds; i += 4 {
		p0 := w[i-16] + sig0(w[i-15]) + w[i-7]
		p1 := w[i-15] + sig0(w[i-14]) + w[i-6]
		p2 := w[i-14] + sig0(w[i-13]) + w[i-5]
		p3 := w[i-13] + sig0(w[i-12]) + w[i-4]
		w[i] = p0 + sig1(w[i-2])
		w[i+1] = p1 + sig1(w[i-1])
		w[i+2] = p2 + sig1(w[i])
		w[i+3] = p3 + sig1(w[i+1])
	}
	for ; i < rounds; i++ {
		w[i] = sig1(w[i-2]) + w[i-7] + sig0(w[i-15]) + w[i-16]
	}
}

func transformVector(state *[8]uint32, p []byte) {
	var w [rounds]uint32
	for len(p) >= BlockSize {
		expandVector(&w, p)
		compress(state, &w)
		p = p[BlockSize:]
	}
}
