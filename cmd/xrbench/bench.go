package main

import (
	. "fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/cryptoxr/cryptoxr/sha90r"
	"github.com/dterei/gotsc"
	sha256 "github.com/minio/sha256-simd"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

var quick bool

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure throughput, cycles per byte, and allocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runBench()
		return nil
	},
}

func init() {
	benchCmd.Flags().BoolVar(&quick, "quick", false, "measure only the two small sizes")
	rootCmd.AddCommand(benchCmd)
}

var sizes = []int{64, 512 << 10, 64 << 20, 1 << 30}
var msg, calltime = []byte(nil), gotsc.TSCOverhead()

func benchBackend(bk sha90r.Backend) func(b *testing.B) {
	return func(b *testing.B) {
		d := sha90r.NewWithBackend(bk, sha90r.Secure)
		b.SetBytes(int64(len(msg)))
		sum := make([]byte, 0, sha90r.Size)
		b.ResetTimer()
		for i := b.N; i > 0; i-- {
			d.Write(msg)
			sum = d.Sum(sum[:0])
			d.Reset()
		}
	}
}

func benchSHA256(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(msg)
	}
}

func benchBlake3(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(msg)
	}
}

func benchXXH3(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(msg)
	}
}

// benchAlg runs alg at every size while a background goroutine polls the TSC,
// yielding MB/s, cycles per byte, and bytes allocated per op.
func benchAlg(alg func(b *testing.B)) {
	s := len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		msg = make([]byte, v)

		totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
		if calltime > 0 {
			go func() {
				for {
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	Println("Speed " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + fmtFloats(speeds...) + "   cpb")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func runBench() {
	if quick {
		sizes = sizes[:2]
	}
	header := "           64B      512K"
	if !quick {
		header += "       64M        1G"
	}
	Printf("Running xrbench on %d CPUs!\n%s/%s\n\n%s\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, header)
	t := time.Now()

	for _, bk := range []sha90r.Backend{sha90r.Scalar, sha90r.Vectorized, sha90r.Dispatch} {
		d := sha90r.NewWithBackend(bk, sha90r.Secure)
		Printf("sha90r (%s, resolves to %s)\n", bk, d.BackendName())
		benchAlg(benchBackend(bk))
	}

	Println("github.com/minio/sha256-simd")
	benchAlg(benchSHA256)

	Println("github.com/zeebo/blake3")
	benchAlg(benchBlake3)

	Println("github.com/zeebo/xxh3")
	benchAlg(benchXXH3)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
