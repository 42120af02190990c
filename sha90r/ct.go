package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.
// Branch-free selection primitives. Every data-dependent decision in the
// secure finalization path and the pipeline backend goes through these; no
// other construct in the package may branch on message-derived values.

// ctSelect32 returns a when mask is all ones and b when mask is zero.
// mask must be 0 or ^uint32(0).
func ctSelect32(mask, a, b uint32) uint32 { return (a & mask) | (b &^ mask) }

// ctSelectByte is ctSelect32 for single bytes.
func ctSelectByte(mask, a, b byte) byte { return (a & mask) | (b &^ mask) }

// ctMaskLess returns ^uint32(0) when x < y and 0 otherwise,
// for x, y < 1<<31.
func ctMaskLess(x, y uint32) uint32 { return uint32(int32(x-y) >> 31) }
