// SPDX-License-Identifier: MIT

package welford_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvstat/welford"
)

var sinkStats welford.CovStats

func benchSamples(n, dim int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
		for k := range out[i] {
			out[i][k] = rng.NormFloat64()
		}
	}
	return out
}

func BenchmarkCovarianceTracker_Update(b *testing.B) {
	for _, dim := range []int{4, 32, 128} {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			ct, err := welford.NewCovarianceTracker(dim)
			if err != nil {
				b.Fatal(err)
			}
			samples := benchSamples(256, dim)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := ct.Push(samples[i%len(samples)]); err != nil {
					b.Fatal(err)
				}
			}
			sinkStats = ct.Query()
		})
	}
}

func BenchmarkTracker_UpdateVec(b *testing.B) {
	for _, dim := range []int{4, 64, 1024} {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			tr, err := welford.NewTracker(welford.Vec(dim))
			if err != nil {
				b.Fatal(err)
			}
			samples := benchSamples(64, dim)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := tr.Push(samples[i%len(samples)]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
