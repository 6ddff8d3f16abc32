// SPDX-License-Identifier: MIT

package welford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/matrix"
	"github.com/katalvlaran/lvstat/welford"
)

// knownVectors is the four-sample (4,1) scenario with an irregular last row.
var knownVectors = [][]float64{
	{1, 2, 3, 10.1},
	{4, 5, 6, 9.1},
	{7, 8, 9, 10.2},
	{10, 11, 12, 10.2},
}

func mustTracker(t testing.TB, s welford.Shape, opts ...welford.Option) *welford.Tracker {
	t.Helper()
	tr, err := welford.NewTracker(s, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTracker_InvalidShape(t *testing.T) {
	t.Parallel()

	for _, s := range []welford.Shape{{Rows: 0, Cols: 1}, {Rows: 1, Cols: 0}, {Rows: -2, Cols: 3}} {
		_, err := welford.NewTracker(s)
		require.ErrorIs(t, err, welford.ErrInvalidShape, "shape %s", s)
	}
}

func TestTracker_KnownVector(t *testing.T) {
	t.Parallel()

	tr := mustTracker(t, welford.Vec(4))
	var st welford.Stats
	var err error
	for _, x := range knownVectors {
		st, err = tr.UpdateVec(x)
		require.NoError(t, err)
	}

	assert.Equal(t, 4, st.Count)
	assert.InDeltaSlice(t, []float64{5.5, 6.5, 7.5, 9.9}, st.Mean.Values(), 1e-12)

	// Population variance equals mean(x²) - mean(x)² per element.
	for k := 0; k < 4; k++ {
		var s, s2 float64
		for _, x := range knownVectors {
			s += x[k]
			s2 += x[k] * x[k]
		}
		want := s2/4 - (s/4)*(s/4)
		got := st.Variance.Values()[k]
		assert.InDelta(t, want, got, 1e-9, "element %d", k)
	}
	assert.InDelta(t, 11.25, st.Variance.Values()[0], 1e-12)

	// Overall tracker sees all 16 elements.
	var s, s2 float64
	for _, x := range knownVectors {
		for _, v := range x {
			s += v
			s2 += v * v
		}
	}
	assert.Equal(t, 16, st.Elements)
	assert.InDelta(t, s/16, st.OverallMean, 1e-12)
	assert.InDelta(t, s2/16-(s/16)*(s/16), st.OverallVariance, 1e-9)
}

func TestTracker_ZeroAndOneSample(t *testing.T) {
	t.Parallel()

	tr := mustTracker(t, welford.Shape{Rows: 2, Cols: 2})

	st := tr.Query()
	assert.Equal(t, 0, st.Count)
	assert.Equal(t, []float64{0, 0, 0, 0}, st.Mean.Values())
	assert.Equal(t, []float64{0, 0, 0, 0}, st.Variance.Values())
	assert.Zero(t, st.OverallVariance)

	sample, err := matrix.NewFromRows([][]float64{{1, -2}, {3.5, 4}})
	require.NoError(t, err)
	st, err = tr.Update(sample)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Count)
	assert.Equal(t, []float64{1, -2, 3.5, 4}, st.Mean.Values())
	assert.Equal(t, []float64{0, 0, 0, 0}, st.Variance.Values())
	// The overall accumulator already has four elements.
	assert.Greater(t, st.OverallVariance, 0.0)
}

func TestTracker_ShapeMismatchLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	tr := mustTracker(t, welford.Vec(4))
	_, err := tr.UpdateVec(knownVectors[0])
	require.NoError(t, err)
	before := tr.Query()

	wrong, err := matrix.NewFromRows([][]float64{{1, 2, 3, 4}})
	require.NoError(t, err)
	_, err = tr.Update(wrong)
	require.ErrorIs(t, err, welford.ErrShapeMismatch)

	_, err = tr.UpdateVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, welford.ErrShapeMismatch)

	_, err = tr.UpdateVec([]float64{1, math.NaN(), 3, 4})
	require.ErrorIs(t, err, welford.ErrNotFinite)

	_, err = tr.Update(nil)
	require.ErrorIs(t, err, welford.ErrShapeMismatch)

	assert.Equal(t, before, tr.Query())
}

func TestTracker_QueryDoesNotMutate(t *testing.T) {
	t.Parallel()

	tr := mustTracker(t, welford.Vec(4))
	for _, x := range knownVectors[:2] {
		_, err := tr.UpdateVec(x)
		require.NoError(t, err)
	}
	q1 := tr.Query()
	require.NoError(t, q1.Mean.Set(0, 0, 1e6)) // caller owns the copy
	q2 := tr.Query()
	assert.Equal(t, 2.5, q2.Mean.Values()[0])
	assert.Equal(t, 2, tr.Count())
}

func TestTracker_Deterministic(t *testing.T) {
	t.Parallel()

	run := func() welford.Stats {
		tr := mustTracker(t, welford.Vec(8))
		rng := rand.New(rand.NewSource(17))
		x := make([]float64, 8)
		for i := 0; i < 500; i++ {
			for k := range x {
				x[k] = rng.NormFloat64()*3 + 1e4
			}
			_, err := tr.UpdateVec(x)
			require.NoError(t, err)
		}
		return tr.Query()
	}

	a, b := run(), run()
	assert.Equal(t, a.Mean.Values(), b.Mean.Values())
	assert.Equal(t, a.Variance.Values(), b.Variance.Values())
	assert.Equal(t, a.OverallVariance, b.OverallVariance)
}

func TestTracker_PermutationAgreement(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	samples := make([][]float64, 200)
	for i := range samples {
		samples[i] = []float64{rng.Float64() * 100, rng.NormFloat64(), 1e6 + rng.Float64()}
	}

	feed := func(order []int) welford.Stats {
		tr := mustTracker(t, welford.Vec(3))
		for _, i := range order {
			_, err := tr.UpdateVec(samples[i])
			require.NoError(t, err)
		}
		return tr.Query()
	}

	identity := make([]int, len(samples))
	for i := range identity {
		identity[i] = i
	}
	a := feed(identity)
	b := feed(rng.Perm(len(samples)))

	assertRelClose(t, a.Mean.Values(), b.Mean.Values(), 1e-9)
	assertRelClose(t, a.Variance.Values(), b.Variance.Values(), 1e-9)
	assertRelClose(t, []float64{a.OverallVariance}, []float64{b.OverallVariance}, 1e-9)
}

func TestTracker_MatchesBatchVariance(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(29))
	samples := make([][]float64, 300)
	for i := range samples {
		samples[i] = []float64{rng.NormFloat64() * 5, 1e5 + rng.Float64(), rng.Float64() - 0.5, 42}
	}

	tr := mustTracker(t, welford.Vec(4))
	for i, x := range samples {
		st, err := tr.UpdateVec(x)
		require.NoError(t, err)
		if i < 1 {
			continue
		}
		batch, means, err := matrix.Variance(mustRows(t, samples[:i+1]))
		require.NoError(t, err)
		assertRelClose(t, means, st.Mean.Values(), 1e-12)
		assertRelClose(t, batch.Values(), st.Variance.Values(), 1e-9)
	}
	// The constant column has zero spread.
	assert.Equal(t, 0.0, tr.Query().Variance.Values()[3])
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	tr := mustTracker(t, welford.Vec(4))
	for _, x := range knownVectors {
		_, err := tr.UpdateVec(x)
		require.NoError(t, err)
	}
	tr.Reset()
	assert.Equal(t, mustTracker(t, welford.Vec(4)).Query(), tr.Query())
}

func assertRelClose(t *testing.T, want, got []float64, rel float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for k := range want {
		scale := math.Max(math.Abs(want[k]), 1)
		assert.LessOrEqualf(t, math.Abs(want[k]-got[k]), rel*scale, "index %d: %g vs %g", k, want[k], got[k])
	}
}
