package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

// compress runs the 90-round compression over one expanded schedule and folds
// the result back into state.
func compress(state *[8]uint32, w *[rounds]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < rounds; i++ {
		t1 := h + ep1(e) + ((e & f) ^ (^e & g)) + kTable[i] + w[i]
		t2 := ep0(a) + ((a & b) ^ (a & c) ^ (b & c))
		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// transformScalar processes len(p)/64 whole blocks sequentially.
func transformScalar(state *[8]uint32, p []byte) {
	var w [rounds]uint32
	for len(p) >= BlockSize {
		expand(&w, p)
		compress(state, &w)
		p = p[BlockSize:]
	}
}
