package timing

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.Equal(t, 8, s.N)
	require.InDelta(t, 5.0, s.Mean, 1e-9)
	require.InDelta(t, 2.0, s.Min, 1e-9)
	require.InDelta(t, 9.0, s.Max, 1e-9)
	// Sample (n-1) standard deviation.
	require.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	require.Equal(t, Stats{}, Summarize(nil))
}

func TestWelchIdenticalDistributions(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := make([]float64, 5000)
	b := make([]float64, 5000)
	for i := range a {
		a[i] = 1000 + rnd.NormFloat64()*50
		b[i] = 1000 + rnd.NormFloat64()*50
	}
	_, p := Welch(Summarize(a), Summarize(b))
	require.GreaterOrEqual(t, p, significanceP)
}

func TestWelchShiftedDistributions(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	a := make([]float64, 5000)
	b := make([]float64, 5000)
	for i := range a {
		a[i] = 1000 + rnd.NormFloat64()*50
		b[i] = 1500 + rnd.NormFloat64()*50
	}
	tStat, p := Welch(Summarize(a), Summarize(b))
	require.Less(t, p, significanceP)
	require.Less(t, tStat, 0.0)
}

func TestWelchZeroVariance(t *testing.T) {
	s := Summarize([]float64{100, 100, 100})
	tStat, p := Welch(s, s)
	require.Zero(t, tStat)
	require.Equal(t, 1.0, p)
}

func TestClassify(t *testing.T) {
	// Significant but too small to exploit.
	require.Equal(t, NotExploitable, Classify(50, 1e-9))
	// Large but not significant.
	require.Equal(t, NotExploitable, Classify(5000, 0.5))
	// Large and significant.
	require.Equal(t, PotentialLeak, Classify(5000, 1e-9))
	require.Equal(t, "POTENTIAL LEAK", PotentialLeak.String())
	require.Equal(t, "not exploitable", NotExploitable.String())
}

func TestCompareStableOperation(t *testing.T) {
	// Two identical cheap operations must never be flagged.
	sink := 0
	op := func() {
		for i := 0; i < 100; i++ {
			sink += i
		}
	}
	r := Compare("stable", 2000, op, op)
	require.Equal(t, NotExploitable, r.Verdict)
	require.Equal(t, 2000, r.A.N)
	require.Equal(t, 2000, r.B.N)
}

func TestDefaultCases(t *testing.T) {
	cases := DefaultCases()
	require.Len(t, cases, 4)
	for _, c := range cases {
		require.Len(t, c.A, 64)
		require.Len(t, c.B, 64)
		diff := 0
		for i := range c.A {
			if c.A[i] != c.B[i] {
				diff++
			}
		}
		require.Equal(t, 1, diff, c.Name)
		require.Equal(t, c.A[0]^0x01, c.B[0], c.Name)
	}
}
