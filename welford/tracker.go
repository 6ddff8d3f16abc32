// SPDX-License-Identifier: MIT

package welford

import (
	"fmt"

	"github.com/katalvlaran/lvstat/matrix"
)

// Stats is a snapshot of a Tracker. Matrices are fresh copies owned by the
// caller.
type Stats struct {
	Count    int
	Mean     *matrix.Dense // per-element running mean
	Variance *matrix.Dense // per-element M2/count; zeros while count < 2

	Elements        int     // elements seen by the overall accumulator
	OverallMean     float64 // mean over every element of every sample
	OverallVariance float64 // M2/Elements; 0 while Elements < 2
}

// Tracker keeps per-element mean and variance for r×c samples, plus an
// overall scalar mean and variance over every element seen.
type Tracker struct {
	shape   Shape
	elem    *Accumulator
	overall *Accumulator
	one     []float64 // 1-element scratch for the overall accumulator
}

// NewTracker builds a tracker for samples of the given shape.
//
// Errors:
//   - ErrInvalidShape for non-positive dimensions.
func NewTracker(shape Shape, opts ...Option) (*Tracker, error) {
	ew, err := NewElementWise(shape)
	if err != nil {
		return nil, err
	}
	elem, err := NewAccumulator(ew, opts...)
	if err != nil {
		return nil, err
	}
	scalar, err := NewElementWise(Vec(1))
	if err != nil {
		return nil, err
	}
	overall, err := NewAccumulator(scalar, opts...)
	if err != nil {
		return nil, err
	}

	return &Tracker{shape: shape, elem: elem, overall: overall, one: make([]float64, 1)}, nil
}

// Update folds one r×c sample into the tracker and returns the statistics
// after the update.
//
// Errors:
//   - ErrShapeMismatch when sample's shape differs; the tracker is unchanged.
func (t *Tracker) Update(sample *matrix.Dense) (Stats, error) {
	if sample == nil {
		return Stats{}, welfordErrorf(opUpdate, fmt.Errorf("%w: nil sample", ErrShapeMismatch))
	}
	if r, c := sample.Shape(); r != t.shape.Rows || c != t.shape.Cols {
		return Stats{}, welfordErrorf(opUpdate, fmt.Errorf("%w: got %dx%d, want %s", ErrShapeMismatch, r, c, t.shape))
	}
	return t.UpdateVec(sample.Values())
}

// UpdateVec is Update for a sample already flattened in row-major order.
func (t *Tracker) UpdateVec(x []float64) (Stats, error) {
	if err := t.Push(x); err != nil {
		return Stats{}, err
	}
	return t.Query(), nil
}

// Push folds a flattened sample in without building a snapshot.
// Same errors as Update.
func (t *Tracker) Push(x []float64) error {
	if err := t.elem.Add(x); err != nil {
		return welfordErrorf(opUpdate, err)
	}
	// x was validated by elem.Add, so the scalar updates cannot fail.
	for _, v := range x {
		t.one[0] = v
		_ = t.overall.Add(t.one)
	}
	return nil
}

// Query returns the current statistics without mutating the tracker. Before
// the first sample every value is zero.
func (t *Tracker) Query() Stats {
	mean, _ := matrix.NewFromSlice(t.shape.Rows, t.shape.Cols, t.elem.Mean(), matrix.WithNoValidateNaNInf())
	ov := t.overall.Normalized()
	v, _ := ov.At(0, 0)

	return Stats{
		Count:           t.elem.Count(),
		Mean:            mean,
		Variance:        t.elem.Normalized(),
		Elements:        t.overall.Count(),
		OverallMean:     t.overall.Mean()[0],
		OverallVariance: v,
	}
}

// Count is the number of samples seen.
func (t *Tracker) Count() int { return t.elem.Count() }

// Shape is the sample shape fixed at construction.
func (t *Tracker) Shape() Shape { return t.shape }

// Reset returns the tracker to the zero-sample state.
func (t *Tracker) Reset() {
	t.elem.Reset()
	t.overall.Reset()
}
