// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/matrix"
)

// hide wraps a Matrix so kernels cannot type-assert *Dense and must take the
// generic At/Set path.
type hide struct{ matrix.Matrix }

func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }

// NewFilledDense builds an r×c Dense from row-major vals or fails the test.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromSlice(r, c, vals)
	require.NoError(tb, err)

	return m
}

// RandFilledDense returns an r×c Dense with uniform values in [-1,1) drawn
// from a seeded source.
func RandFilledDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return NewFilledDense(tb, r, c, vals)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(tb testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}
