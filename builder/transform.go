// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvstat/fixedpoint"
)

// Permute returns a deep copy of samples in a seed-determined order. The
// input is not modified.
func Permute(samples [][]float64, seed int64) [][]float64 {
	out := make([][]float64, len(samples))
	for i, s := range samples {
		out[i] = append([]float64(nil), s...)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Quantize encodes every sample through c, producing rows ready for
// stream.NewSliceSource.
//
// Errors:
//   - whatever c.EncodeAll returns (fixedpoint.ErrOverflow under the reject
//     policy, fixedpoint.ErrNotFinite), annotated with the sample index.
func Quantize(c *fixedpoint.Codec, samples [][]float64) ([][]fixedpoint.Word, error) {
	out := make([][]fixedpoint.Word, len(samples))
	for i, s := range samples {
		words, err := c.EncodeAll(s)
		if err != nil {
			return nil, builderErrorf(MethodQuantize, err, "sample %d", i)
		}
		out[i] = words
	}
	return out, nil
}
