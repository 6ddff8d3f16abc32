// SPDX-License-Identifier: MIT

package welford

import (
	"github.com/katalvlaran/lvstat/matrix"
)

// CovStats is a snapshot of a CovarianceTracker. All fields are copies owned
// by the caller.
type CovStats struct {
	Count         int
	Mean          []float64
	Covariance    *matrix.Dense // M2/(count-1); zeros while count < 2
	Variance      []float64     // diagonal of Covariance
	TotalVariance float64       // trace of Covariance
}

// CovarianceTracker keeps the running mean and sample covariance of
// d-dimensional vectors.
type CovarianceTracker struct {
	acc *Accumulator
}

// NewCovarianceTracker builds a tracker for vectors of length dim.
//
// Errors:
//   - ErrInvalidShape when dim <= 0.
func NewCovarianceTracker(dim int, opts ...Option) (*CovarianceTracker, error) {
	cp, err := NewCrossProduct(dim)
	if err != nil {
		return nil, err
	}
	acc, err := NewAccumulator(cp, opts...)
	if err != nil {
		return nil, err
	}
	return &CovarianceTracker{acc: acc}, nil
}

// Update folds one vector in and returns the statistics after the update.
//
// Errors:
//   - ErrShapeMismatch when len(x) != Dim(); ErrNotFinite. The tracker is
//     unchanged on error.
func (c *CovarianceTracker) Update(x []float64) (CovStats, error) {
	if err := c.Push(x); err != nil {
		return CovStats{}, err
	}
	return c.Query(), nil
}

// Push folds x in without building a snapshot. Same errors as Update.
func (c *CovarianceTracker) Push(x []float64) error {
	if err := c.acc.Add(x); err != nil {
		return welfordErrorf(opCovUpdate, err)
	}
	return nil
}

// Query returns the current statistics without mutating the tracker.
func (c *CovarianceTracker) Query() CovStats {
	cov := c.acc.Normalized()
	diag, _ := matrix.Diagonal(cov) // square by construction
	total := matrix.ZeroSum
	for _, v := range diag {
		total += v
	}

	return CovStats{
		Count:         c.acc.Count(),
		Mean:          c.acc.Mean(),
		Covariance:    cov,
		Variance:      diag,
		TotalVariance: total,
	}
}

// Count is the number of vectors seen.
func (c *CovarianceTracker) Count() int { return c.acc.Count() }

// Dim is the vector length fixed at construction.
func (c *CovarianceTracker) Dim() int { return c.acc.Dim() }

// M2 returns a copy of the raw cross-product sum.
func (c *CovarianceTracker) M2() *matrix.Dense { return c.acc.M2() }

// Reset returns the tracker to the zero-sample state.
func (c *CovarianceTracker) Reset() { c.acc.Reset() }
