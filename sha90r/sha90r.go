// Package sha90r implements SHA256-90R, a SHA-256 variant extended to 90
// compression rounds with a hardened, constant-time finalization path.
//
// The digest is not interoperable with SHA-256 and carries no FIPS claims;
// it exists to study the cost and side-channel behavior of extended-round
// designs across software backends.
package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"encoding/binary"
	"hash"
)

// Mode selects the security/performance trade-off of one digest instance.
// It is captured at construction and never read from process state.
type Mode int

const (
	// Secure keeps every message-dependent decision branch-free. Default.
	Secure Mode = iota
	// Accelerated permits data-dependent branching in finalization.
	Accelerated
	// Fast is Accelerated with the fastest resolved backend.
	Fast
)

func (m Mode) String() string {
	switch m {
	case Secure:
		return "secure"
	case Accelerated:
		return "accelerated"
	case Fast:
		return "fast"
	}
	return "unknown"
}

// Digest is a streaming SHA256-90R computation. It implements hash.Hash.
// A Digest is not safe for concurrent use; hash distinct messages on
// distinct instances.
type Digest struct {
	state     [8]uint32
	buf       [BlockSize]byte
	n         int
	bits      uint64
	mode      Mode
	requested Backend
	resolved  Backend
	transform transformFunc
}

var _ hash.Hash = (*Digest)(nil)

// New returns a Secure-mode digest using the Auto backend.
func New() *Digest { return NewWithBackend(Auto, Secure) }

// NewWithBackend returns a digest pinned to the given backend and mode. If
// the backend is unavailable on this host it silently resolves to Scalar;
// the resolved choice is queryable via BackendName.
func NewWithBackend(b Backend, m Mode) *Digest {
	d := &Digest{mode: m, requested: b}
	if m == Fast {
		d.resolved, d.transform = resolve(Auto)
	} else {
		d.resolved, d.transform = resolve(b)
	}
	d.Reset()
	return d
}

// BackendName reports the backend actually running, after any fallback.
func (d *Digest) BackendName() string { return d.resolved.String() }

// ModeName reports the mode captured at construction.
func (d *Digest) ModeName() string { return d.mode.String() }

// Size returns the digest length, 32 bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the compression block length, 64 bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Reset returns the digest to its initial state, wiping buffered input.
func (d *Digest) Reset() {
	d.state = iv
	d.buf = [BlockSize]byte{}
	d.n = 0
	d.bits = 0
}

// Close wipes the running state and buffered input. The instance must be
// Reset before reuse. It never returns an error; the signature satisfies
// io.Closer.
func (d *Digest) Close() error {
	d.state = [8]uint32{}
	d.buf = [BlockSize]byte{}
	d.n = 0
	d.bits = 0
	return nil
}

// Write absorbs p. Whole blocks bypass the internal buffer.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.bits += uint64(n) << 3
	if d.n > 0 {
		c := copy(d.buf[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n == BlockSize {
			d.transform(&d.state, d.buf[:])
			d.n = 0
		}
	}
	if len(p) >= BlockSize {
		full := len(p) &^ (BlockSize - 1)
		d.transform(&d.state, p[:full])
		p = p[full:]
	}
	if len(p) > 0 {
		d.n = copy(d.buf[:], p)
	}
	return n, nil
}

// Sum appends the digest of the data written so far to b. It does not
// consume the instance: further Writes continue the same stream.
func (d *Digest) Sum(b []byte) []byte {
	dd := *d
	sum := dd.checkSum()
	return append(b, sum[:]...)
}

// checkSum finalizes the running state. In Secure mode the padding layout is
// decided by masks and both candidate compressions always run, so the cost
// is independent of how many bytes sit in the buffer. The other modes take
// the ordinary branchy path.
func (d *Digest) checkSum() [Size]byte {
	var lenb [8]byte
	binary.BigEndian.PutUint64(lenb[:], d.bits)

	if d.mode != Secure {
		var pad [BlockSize]byte
		copy(pad[:], d.buf[:d.n])
		pad[d.n] = 0x80
		if d.n >= 56 {
			d.transform(&d.state, pad[:])
			pad = [BlockSize]byte{}
		}
		copy(pad[56:], lenb[:])
		d.transform(&d.state, pad[:])
		return d.serialize(&d.state)
	}

	// spill is all ones when the length field does not fit this block.
	spill := ctMaskLess(55, uint32(d.n))

	var pad [BlockSize]byte
	copy(pad[:], d.buf[:d.n])
	pad[d.n] = 0x80
	for i := 0; i < 8; i++ {
		// Carries the length only when no spill block follows.
		pad[56+i] = ctSelectByte(byte(spill), pad[56+i], lenb[i])
	}

	one := d.state
	d.transform(&one, pad[:])

	var spillBlock [BlockSize]byte
	copy(spillBlock[56:], lenb[:])
	two := one
	d.transform(&two, spillBlock[:])

	var final [8]uint32
	for i := range final {
		final[i] = ctSelect32(spill, two[i], one[i])
	}
	return d.serialize(&final)
}

func (d *Digest) serialize(state *[8]uint32) (out [Size]byte) {
	for i, s := range state {
		binary.BigEndian.PutUint32(out[i*4:], s)
	}
	return out
}

// Sum90R is the one-shot digest of msg in Secure mode on the Auto backend.
func Sum90R(msg []byte) [Size]byte {
	d := New()
	d.Write(msg)
	dd := *d
	return dd.checkSum()
}

// SumWithBackend is Sum90R pinned to a backend and mode.
func SumWithBackend(b Backend, m Mode, msg []byte) [Size]byte {
	d := NewWithBackend(b, m)
	d.Write(msg)
	dd := *d
	return dd.checkSum()
}
