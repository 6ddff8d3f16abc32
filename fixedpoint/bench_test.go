// SPDX-License-Identifier: MIT

package fixedpoint_test

import (
	"testing"

	"github.com/katalvlaran/lvstat/fixedpoint"
)

var (
	sinkW fixedpoint.Word
	sinkF float64
)

func BenchmarkEncode(b *testing.B) {
	c := fixedpoint.MustNew(32, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w, err := c.Encode(float64(i%4096) * 0.37)
		if err != nil {
			b.Fatal(err)
		}
		sinkW = w
	}
}

func BenchmarkDecode(b *testing.B) {
	c := fixedpoint.MustNew(32, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = c.Decode(fixedpoint.Word(i))
	}
}
