package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.
// A software model of a 90-stage hardware pipeline. Each block traverses a
// fixed 179-clock schedule (90 fill + 89 drain); every clock performs the
// same masked work for every stage whether or not the stage holds live data,
// so the cycle count per block is constant. The model chains each block from
// the running state, so its digests match the scalar backend exactly.

// pipeStage holds the working registers of one in-flight block at one stage.
// valid is an all-ones/all-zeros occupancy mask.
type pipeStage struct {
	regs  [8]uint32
	valid uint32
}

// roundMasked applies round i of the compression to r when mask is all ones
// and leaves r untouched when mask is zero, doing the full computation either
// way.
func roundMasked(r *[8]uint32, w, k, mask uint32) {
	t1 := r[7] + ep1(r[4]) + ((r[4] & r[5]) ^ (^r[4] & r[6])) + k + w
	t2 := ep0(r[0]) + ((r[0] & r[1]) ^ (r[0] & r[2]) ^ (r[1] & r[2]))
	next := [8]uint32{t1 + t2, r[0], r[1], r[2], r[3] + t1, r[4], r[5], r[6]}
	for i := range r {
		r[i] = ctSelect32(mask, next[i], r[i])
	}
}

func transformPipeline(state *[8]uint32, p []byte) {
	var w [rounds]uint32
	var st [rounds]pipeStage
	for len(p) >= BlockSize {
		expand(&w, p)
		for i := range st {
			st[i] = pipeStage{}
		}
		var out [8]uint32
		for clk := 0; clk < 2*rounds-1; clk++ {
			// The final stage completes round 89 and latches its result.
			last := st[rounds-1]
			roundMasked(&last.regs, w[rounds-1], kTable[rounds-1], last.valid)
			for j := range out {
				out[j] = ctSelect32(last.valid, last.regs[j], out[j])
			}
			// Shift every stage forward, applying its round on the way.
			for i := rounds - 1; i >= 1; i-- {
				e := st[i-1]
				roundMasked(&e.regs, w[i-1], kTable[i-1], e.valid)
				st[i] = e
			}
			// One block enters at clock zero; the remaining clocks inject
			// an invalid (masked-out) entry of identical shape.
			inject := uint32(0)
			if clk == 0 {
				inject = ^uint32(0)
			}
			for j := 0; j < 8; j++ {
				st[0].regs[j] = ctSelect32(inject, state[j], 0)
			}
			st[0].valid = inject
		}
		for j := range state {
			state[j] += out[j]
		}
		p = p[BlockSize:]
	}
}
