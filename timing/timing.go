// Package timing measures whether an operation's running time depends on its
// input. It collects wall-clock samples for two input classes and applies
// Welch's unequal-variance t-test; a leak verdict requires both a
// statistically significant difference and a practically exploitable one.
package timing

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"math"
	"time"
)

// Stats summarizes one sample set, in nanoseconds.
type Stats struct {
	Mean, StdDev, Min, Max float64
	N                      int
}

// Summarize computes the moments of samples.
func Summarize(samples []float64) Stats {
	s := Stats{N: len(samples), Min: math.Inf(1), Max: math.Inf(-1)}
	if s.N == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range samples {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(s.N)
	var sq float64
	for _, v := range samples {
		d := v - s.Mean
		sq += d * d
	}
	if s.N > 1 {
		s.StdDev = math.Sqrt(sq / float64(s.N-1))
	}
	return s
}

// Welch runs Welch's t-test over two sample sets and returns the t statistic
// and the two-tailed p-value under the normal approximation.
func Welch(a, b Stats) (tStat, p float64) {
	va := a.StdDev * a.StdDev / float64(a.N)
	vb := b.StdDev * b.StdDev / float64(b.N)
	denom := math.Sqrt(va + vb)
	if denom == 0 {
		// Identical, perfectly stable timings.
		return 0, 1
	}
	tStat = (a.Mean - b.Mean) / denom
	p = 2 * (1 - stdNormalCDF(math.Abs(tStat)))
	return tStat, p
}

func stdNormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// Exploitability thresholds: a difference below practicalNS is buried in
// network and scheduler noise regardless of significance, and p-values
// above significanceP are consistent with no difference at all.
const (
	practicalNS   = 100.0
	significanceP = 0.001
)

// Verdict classifies a comparison.
type Verdict int

const (
	NotExploitable Verdict = iota
	PotentialLeak
)

func (v Verdict) String() string {
	if v == PotentialLeak {
		return "POTENTIAL LEAK"
	}
	return "not exploitable"
}

// Result is the full outcome of comparing two input classes.
type Result struct {
	Name    string
	A, B    Stats
	T, P    float64
	Verdict Verdict
}

// MeanDelta is the absolute difference of the two means in nanoseconds.
func (r Result) MeanDelta() float64 { return math.Abs(r.A.Mean - r.B.Mean) }

// Compare runs op n times per class, interleaving the classes so that slow
// drift (thermal, scheduler) hits both equally, and classifies the outcome.
func Compare(name string, n int, opA, opB func()) Result {
	sa := make([]float64, 0, n)
	sb := make([]float64, 0, n)
	// Warm-up settles caches and lazy init out of the measurement.
	for i := 0; i < 16; i++ {
		opA()
		opB()
	}
	for i := 0; i < n; i++ {
		t0 := time.Now()
		opA()
		sa = append(sa, float64(time.Since(t0).Nanoseconds()))
		t1 := time.Now()
		opB()
		sb = append(sb, float64(time.Since(t1).Nanoseconds()))
	}
	r := Result{Name: name, A: Summarize(sa), B: Summarize(sb)}
	r.T, r.P = Welch(r.A, r.B)
	r.Verdict = Classify(r.MeanDelta(), r.P)
	return r
}

// Classify applies the exploitability rule to a mean difference and p-value.
func Classify(meanDeltaNS, p float64) Verdict {
	if meanDeltaNS < practicalNS || p >= significanceP {
		return NotExploitable
	}
	return PotentialLeak
}
