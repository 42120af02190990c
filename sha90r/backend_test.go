package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarAlwaysAvailable(t *testing.T) {
	require.True(t, Available(Scalar))
	require.True(t, Available(Auto))
	require.True(t, Available(Dispatch))
	require.True(t, Available(PipelineSim))
}

func TestUnshippedBackendsFallBack(t *testing.T) {
	for _, b := range []Backend{HardwareExtension, GpuBatch} {
		require.False(t, Available(b))
		d := NewWithBackend(b, Secure)
		require.Equal(t, Scalar.String(), d.BackendName())
	}
}

// TestBackendEquivalence hashes a corpus spanning block and padding
// boundaries on every backend identifier and requires identical digests.
func TestBackendEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	corpus := [][]byte{{}, []byte("abc")}
	for _, n := range []int{1, 55, 56, 63, 64, 65, 127, 128, 129, 1000, 4096} {
		m := make([]byte, n)
		rnd.Read(m)
		corpus = append(corpus, m)
	}

	for _, msg := range corpus {
		want := SumWithBackend(Scalar, Secure, msg)
		for _, b := range Backends() {
			got := SumWithBackend(b, Secure, msg)
			require.Equal(t, want, got, "backend %s, length %d", b, len(msg))
		}
	}
}

func TestExpandVectorMatchesScalar(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	block := make([]byte, BlockSize)
	for trial := 0; trial < 32; trial++ {
		rnd.Read(block)
		var a, b [rounds]uint32
		expand(&a, block)
		expandVector(&b, block)
		require.Equal(t, a, b)
	}
}

func TestPipelineChainsAcrossBlocks(t *testing.T) {
	// Multi-block input; a pipeline reseeded from the IV each block would
	// diverge here.
	msg := make([]byte, 3*BlockSize+17)
	rand.New(rand.NewSource(4)).Read(msg)
	want := SumWithBackend(Scalar, Secure, msg)
	got := SumWithBackend(PipelineSim, Secure, msg)
	require.Equal(t, want, got)
}

func TestVectorizedFallsBackWithoutSupport(t *testing.T) {
	d := NewWithBackend(Vectorized, Secure)
	if Available(Vectorized) {
		require.Equal(t, Vectorized.String(), d.BackendName())
	} else {
		require.Equal(t, Scalar.String(), d.BackendName())
	}
}

func TestModeCapturedPerInstance(t *testing.T) {
	fast := NewWithBackend(Auto, Fast)
	secure := NewWithBackend(Auto, Secure)
	require.Equal(t, "fast", fast.ModeName())
	require.Equal(t, "secure", secure.ModeName())

	// Instances do not influence each other.
	fast.Write([]byte("one"))
	secure.Write([]byte("two"))
	one := Sum90R([]byte("one"))
	require.Equal(t, one[:], fast.Sum(nil))
}
