// SPDX-License-Identifier: MIT

package welford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstat/matrix"
)

// Accumulator runs Welford's recurrence over fixed-length samples and hands
// the second-moment update to a SecondMoment container.
type Accumulator struct {
	count int
	mean  []float64
	m2    SecondMoment
	recip Reciprocal

	// scratch, reused across Add calls
	delta   []float64
	delta2  []float64
	newMean []float64
}

// NewAccumulator builds an accumulator for samples of length m2.Dim().
func NewAccumulator(m2 SecondMoment, opts ...Option) (*Accumulator, error) {
	if m2 == nil {
		return nil, welfordErrorf(opNewAccumulator, fmt.Errorf("%w: nil second moment", ErrInvalidShape))
	}
	d := m2.Dim()
	if d <= 0 {
		return nil, welfordErrorf(opNewAccumulator, fmt.Errorf("%w: dim=%d", ErrInvalidShape, d))
	}
	o := gatherOptions(opts...)

	return &Accumulator{
		mean:    make([]float64, d),
		m2:      m2,
		recip:   o.recip,
		delta:   make([]float64, d),
		delta2:  make([]float64, d),
		newMean: make([]float64, d),
	}, nil
}

// Add folds one sample into the running statistics.
//
// Implementation:
//   - Stage 1: check length and finiteness; nothing is mutated on failure.
//   - Stage 2: delta = x-mean; newMean = mean + delta/n; delta2 = x-newMean,
//     all in scratch buffers.
//   - Stage 3: M2 update, then commit mean and count.
//
// Errors:
//   - ErrShapeMismatch, ErrNotFinite; errors from the container (state unchanged).
func (a *Accumulator) Add(x []float64) error {
	if len(x) != len(a.mean) {
		return welfordErrorf(opAdd, fmt.Errorf("%w: got %d elements, want %d", ErrShapeMismatch, len(x), len(a.mean)))
	}
	for k, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return welfordErrorf(opAdd, fmt.Errorf("%w: element %d = %g", ErrNotFinite, k, v))
		}
	}

	n := a.count + 1
	inv, useInv := 0.0, false
	if a.recip != nil {
		inv, useInv = a.recip.Reciprocal(n)
	}
	for k, v := range x {
		a.delta[k] = v - a.mean[k]
		if useInv {
			a.newMean[k] = a.mean[k] + float64(a.delta[k]*inv)
		} else {
			a.newMean[k] = a.mean[k] + a.delta[k]/float64(n)
		}
		a.delta2[k] = v - a.newMean[k]
	}
	if err := a.m2.Accumulate(a.delta, a.delta2); err != nil {
		return welfordErrorf(opAdd, err)
	}

	copy(a.mean, a.newMean)
	a.count = n
	return nil
}

// Count is the number of samples folded in so far.
func (a *Accumulator) Count() int { return a.count }

// Dim is the sample length.
func (a *Accumulator) Dim() int { return len(a.mean) }

// Mean returns a copy of the running mean (zeros before the first sample).
func (a *Accumulator) Mean() []float64 {
	out := make([]float64, len(a.mean))
	copy(out, a.mean)
	return out
}

// Normalized returns the container's normalized M2 for the current count.
func (a *Accumulator) Normalized() *matrix.Dense { return a.m2.Normalize(a.count) }

// M2 returns a copy of the raw second moment.
func (a *Accumulator) M2() *matrix.Dense { return a.m2.M2() }

// Reset returns to the zero-sample state, keeping every buffer.
func (a *Accumulator) Reset() {
	a.count = 0
	clear(a.mean)
	a.m2.Reset()
}
