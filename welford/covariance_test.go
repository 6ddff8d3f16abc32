// SPDX-License-Identifier: MIT

package welford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/fixedpoint"
	"github.com/katalvlaran/lvstat/matrix"
	"github.com/katalvlaran/lvstat/welford"
)

// q16Vectors are Q16.16 words for four 4-dimensional samples.
var q16Vectors = [][]uint32{
	{0x00010000, 0x00020000, 0x00030000, 0x000A199A},
	{0x00040000, 0x00050000, 0x00060000, 0x0009199A},
	{0x00070000, 0x00080000, 0x00090000, 0x000A3333},
	{0x000A0000, 0x000B0000, 0x000C0000, 0x000A3333},
}

func decodedQ16(t testing.TB) [][]float64 {
	t.Helper()
	c := fixedpoint.MustNew(32, 16)
	out := make([][]float64, len(q16Vectors))
	for i, words := range q16Vectors {
		out[i] = fixedpoint.DecodeAll(c, words)
	}
	return out
}

func mustCov(t testing.TB, dim int, opts ...welford.Option) *welford.CovarianceTracker {
	t.Helper()
	c, err := welford.NewCovarianceTracker(dim, opts...)
	require.NoError(t, err)
	return c
}

func TestCovarianceTracker_Q16Oracle(t *testing.T) {
	t.Parallel()

	samples := decodedQ16(t)
	ct := mustCov(t, 4)
	var st welford.CovStats
	var err error
	for _, x := range samples {
		st, err = ct.Update(x)
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateSymmetric(st.Covariance), "covariance must stay symmetric")
	}

	batch, means, err := matrix.Covariance(mustRows(t, samples))
	require.NoError(t, err)
	batchTrace, err := matrix.Trace(batch)
	require.NoError(t, err)

	assert.InDelta(t, batchTrace, st.TotalVariance, 1e-6)
	assert.InDeltaSlice(t, means, st.Mean, 1e-12)
	CompareCloseT(t, batch, st.Covariance, 1e-9)

	// Columns 0..2 are exact multiples of 2^-16 spaced by 3.
	assert.Equal(t, 15.0, st.Variance[0])
	assert.Equal(t, 15.0, st.Variance[1])
	assert.Equal(t, 15.0, st.Variance[2])
	assert.InDelta(t, 0.28666300458523136, st.Variance[3], 1e-12)
	assert.InDelta(t, 45.28666300458523, st.TotalVariance, 1e-12)
}

func TestCovarianceTracker_ZeroAndOneSample(t *testing.T) {
	t.Parallel()

	ct := mustCov(t, 3)
	st := ct.Query()
	assert.Equal(t, 0, st.Count)
	assert.Equal(t, []float64{0, 0, 0}, st.Mean)
	assert.Equal(t, make([]float64, 9), st.Covariance.Values())
	assert.Zero(t, st.TotalVariance)

	st, err := ct.Update([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, st.Mean)
	assert.Equal(t, make([]float64, 9), st.Covariance.Values())
	assert.Equal(t, []float64{0, 0, 0}, st.Variance)
}

func TestCovarianceTracker_ShapeMismatch(t *testing.T) {
	t.Parallel()

	ct := mustCov(t, 4)
	_, err := ct.Update([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	before := ct.Query()
	m2 := ct.M2()

	_, err = ct.Update([]float64{1, 2})
	require.ErrorIs(t, err, welford.ErrShapeMismatch)
	assert.Equal(t, before, ct.Query())
	assert.Equal(t, m2.Values(), ct.M2().Values())

	_, err = welford.NewCovarianceTracker(0)
	require.ErrorIs(t, err, welford.ErrInvalidShape)
}

func TestCovarianceTracker_DiagonalMatchesElementWise(t *testing.T) {
	t.Parallel()

	// Unbiased diagonal × (n-1)/n equals the biased element-wise variance.
	samples := decodedQ16(t)
	ct := mustCov(t, 4)
	tr := mustTracker(t, welford.Vec(4))
	for _, x := range samples {
		_, err := ct.Update(x)
		require.NoError(t, err)
		_, err = tr.UpdateVec(x)
		require.NoError(t, err)
	}
	n := float64(len(samples))
	cov := ct.Query()
	ew := tr.Query().Variance.Values()
	for k := range ew {
		assert.InDelta(t, ew[k], cov.Variance[k]*(n-1)/n, 1e-12)
	}
}

func TestCovarianceTracker_RawM2SymmetricEveryStep(t *testing.T) {
	t.Parallel()

	// M2 += δ δ'ᵀ is only symmetric up to rounding because δ' uses the
	// updated mean; the deviation must stay at the rounding level.
	rng := rand.New(rand.NewSource(5))
	ct := mustCov(t, 5)
	x := make([]float64, 5)
	for i := 0; i < 400; i++ {
		for k := range x {
			x[k] = rng.NormFloat64()*float64(k+1) + 1e3*float64(k)
		}
		_, err := ct.Update(x)
		require.NoError(t, err)

		m2 := ct.M2()
		scale := 1.0
		for _, v := range m2.Values() {
			scale = math.Max(scale, math.Abs(v))
		}
		require.NoError(t, matrix.ValidateSymmetric(m2, matrix.WithEpsilon(1e-12*scale)), "step %d", i)
	}
}

func TestCovarianceTracker_PermutationAndReset(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	samples := make([][]float64, 300)
	for i := range samples {
		a := rng.NormFloat64()
		samples[i] = []float64{a, 2*a + rng.NormFloat64()*0.1, rng.Float64() * 50}
	}

	ct := mustCov(t, 3)
	for _, x := range samples {
		_, err := ct.Update(x)
		require.NoError(t, err)
	}
	first := ct.Query()

	ct.Reset()
	assert.Equal(t, 0, ct.Count())
	for _, i := range rng.Perm(len(samples)) {
		_, err := ct.Update(samples[i])
		require.NoError(t, err)
	}
	second := ct.Query()

	assertRelClose(t, first.Mean, second.Mean, 1e-9)
	assertRelClose(t, first.Covariance.Values(), second.Covariance.Values(), 1e-9)
	assertRelClose(t, []float64{first.TotalVariance}, []float64{second.TotalVariance}, 1e-9)
}

// exactReciprocal covers every n with the exact float reciprocal.
type exactReciprocal struct{ calls int }

func (r *exactReciprocal) Reciprocal(n int) (float64, bool) {
	r.calls++
	return 1 / float64(n), true
}

// noReciprocal covers nothing, forcing the division fallback.
type noReciprocal struct{}

func (noReciprocal) Reciprocal(int) (float64, bool) { return 0, false }

func TestWithReciprocal(t *testing.T) {
	t.Parallel()

	samples := decodedQ16(t)
	plain := mustCov(t, 4)
	fallback := mustCov(t, 4, welford.WithReciprocal(noReciprocal{}))
	rec := &exactReciprocal{}
	lut := mustCov(t, 4, welford.WithReciprocal(rec))
	for _, x := range samples {
		_, err := plain.Update(x)
		require.NoError(t, err)
		_, err = fallback.Update(x)
		require.NoError(t, err)
		_, err = lut.Update(x)
		require.NoError(t, err)
	}

	assert.Equal(t, len(samples), rec.calls)
	assert.Equal(t, plain.Query(), fallback.Query())
	assertRelClose(t, plain.Query().Covariance.Values(), lut.Query().Covariance.Values(), 1e-12)

	assert.Panics(t, func() { welford.WithReciprocal(nil) })
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func CompareCloseT(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%v\nvs\n%v", want, got)
}
