package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"testing"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

func benchBackend(b *testing.B, bk Backend) {
	d := NewWithBackend(bk, Secure)
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Write(msg)
		d.Sum(nil)
		d.Reset()
	}
}

func BenchmarkScalar(b *testing.B)      { benchBackend(b, Scalar) }
func BenchmarkVectorized(b *testing.B)  { benchBackend(b, Vectorized) }
func BenchmarkDispatch(b *testing.B)    { benchBackend(b, Dispatch) }
func BenchmarkPipelineSim(b *testing.B) { benchBackend(b, PipelineSim) }

func BenchmarkSHA256SIMD(b *testing.B) {
	h, msg := sha256simd.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}

func BenchmarkBlake3(b *testing.B) {
	h, msg := blake3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}

func BenchmarkXXH3(b *testing.B) {
	h, msg := xxh3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}
