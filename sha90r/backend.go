package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.
// Backend selection. The capability record is probed exactly once at package
// init and never mutated afterwards; requesting a backend the host cannot
// provide silently resolves to Scalar, so construction never fails and every
// resolved backend produces identical digests.

import "github.com/klauspost/cpuid/v2"

// Backend identifies a compression-function implementation strategy.
type Backend int

const (
	// Auto lets the library pick the fastest available implementation.
	Auto Backend = iota
	// Scalar is the portable word-at-a-time implementation, always available.
	Scalar
	// Vectorized expands the message schedule four lanes at a time and
	// requires wide-vector support (AVX2 on amd64, ASIMD on arm64).
	Vectorized
	// HardwareExtension stands for dedicated hash instructions (SHA-NI and
	// kin). No such kernel exists here, so it always falls back.
	HardwareExtension
	// GpuBatch stands for an offload kernel. Always falls back.
	GpuBatch
	// PipelineSim is a cycle-accurate model of a 90-stage hardware pipeline.
	// It is a verification backend, far slower than Scalar.
	PipelineSim
	// Dispatch resolves to the fastest available backend once, at init.
	Dispatch
)

func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case Scalar:
		return "scalar"
	case Vectorized:
		return "vectorized"
	case HardwareExtension:
		return "hardware"
	case GpuBatch:
		return "gpu-batch"
	case PipelineSim:
		return "pipeline-sim"
	case Dispatch:
		return "dispatch"
	}
	return "unknown"
}

// Backends lists every backend identifier, for iteration by tests and CLIs.
func Backends() []Backend {
	return []Backend{Auto, Scalar, Vectorized, HardwareExtension, GpuBatch, PipelineSim, Dispatch}
}

// ParseBackend maps a name produced by Backend.String back to its identifier.
func ParseBackend(name string) (Backend, bool) {
	for _, b := range Backends() {
		if b.String() == name {
			return b, true
		}
	}
	return Auto, false
}

type capabilities struct {
	avx2, avx512, sha, asimd bool
}

func (c capabilities) vector() bool { return c.avx2 || c.avx512 || c.asimd }

// caps is probed once and treated as immutable from then on.
var caps = probe()

func probe() capabilities {
	return capabilities{
		avx2:   cpuid.CPU.Supports(cpuid.AVX2),
		avx512: cpuid.CPU.Supports(cpuid.AVX512F),
		sha:    cpuid.CPU.Supports(cpuid.SHA),
		asimd:  cpuid.CPU.Supports(cpuid.ASIMD),
	}
}

// Available reports whether b would run as itself rather than fall back.
func Available(b Backend) bool {
	switch b {
	case Auto, Scalar, PipelineSim, Dispatch:
		return true
	case Vectorized:
		return caps.vector()
	default:
		// HardwareExtension, GpuBatch: no kernels shipped.
		return false
	}
}

// transformFunc consumes len(p)/64 whole blocks.
type transformFunc func(state *[8]uint32, p []byte)

// dispatched is fixed at init, mirroring the once-only capability probe.
var dispatched = func() transformFunc {
	if caps.vector() {
		return transformVector
	}
	return transformScalar
}()

// resolve maps a requested backend to the one that will actually run and its
// transform. Unavailable backends land on Scalar without error.
func resolve(b Backend) (Backend, transformFunc) {
	switch b {
	case Vectorized:
		if caps.vector() {
			return Vectorized, transformVector
		}
	case PipelineSim:
		return PipelineSim, transformPipeline
	case Auto, Dispatch:
		if caps.vector() {
			return Vectorized, dispatched
		}
	}
	return Scalar, transformScalar
}
