// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place rank-one style updates used by streaming second-moment
//     accumulators. Both kernels mutate dst and allocate nothing.
//
// Determinism & Performance:
//   - Single flat pass in row-major order; the accumulation order per
//     element is fixed, so repeated runs over the same stream agree bit for bit.

package matrix

import "fmt"

const (
	opAddHadamard = "AddHadamard"
	opAddOuter    = "AddOuter"
)

// AddHadamard accumulates the elementwise product of a and b into dst:
//
//	dst[k] += a[k] * b[k]   for k in [0, Rows*Cols)
//
// a and b are row-major flattened vectors of dst's shape.
//
// Implementation:
//   - Stage 1: validate dst non-nil and len(a) == len(b) == dst.Len().
//   - Stage 2: one flat loop over the backing buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validation; dst untouched).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - With a = x-mean_old and b = x-mean_new this is the Welford M2 update for
//     independent per-element variances.
func AddHadamard(dst *Dense, a, b []float64) error {
	if dst == nil {
		return matrixErrorf(opAddHadamard, ErrNilMatrix)
	}
	if err := ValidateVecLen(a, len(dst.data)); err != nil {
		return matrixErrorf(opAddHadamard, err)
	}
	if err := ValidateVecLen(b, len(dst.data)); err != nil {
		return matrixErrorf(opAddHadamard, err)
	}

	// float64(...) rounds the product before the add, which rules out FMA
	// fusion and keeps results identical across architectures.
	for k := range dst.data {
		dst.data[k] += float64(a[k] * b[k])
	}

	return nil
}

// AddOuter accumulates the outer product of a and b into dst:
//
//	dst[i,j] += a[i] * b[j]
//
// Implementation:
//   - Stage 1: validate len(a) == Rows and len(b) == Cols.
//   - Stage 2: for each row, skip zero a[i] and add a[i]*b into the row slice.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (dst untouched on error).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - When a and b are the pre- and post-update deviations of the same
//     sample the result is generally not symmetric element by element, but
//     the accumulated sum is symmetric in exact arithmetic.
func AddOuter(dst *Dense, a, b []float64) error {
	if dst == nil {
		return matrixErrorf(opAddOuter, ErrNilMatrix)
	}
	if len(a) != dst.r || len(b) != dst.c {
		return matrixErrorf(opAddOuter, fmt.Errorf("%w: outer %d×%d into %d×%d", ErrDimensionMismatch, len(a), len(b), dst.r, dst.c))
	}

	var i, j, base int
	var ai float64
	for i = 0; i < dst.r; i++ {
		ai = a[i]
		if ai == 0 {
			continue
		}
		base = i * dst.c
		for j = 0; j < dst.c; j++ {
			dst.data[base+j] += float64(ai * b[j]) // no FMA, see AddHadamard
		}
	}

	return nil
}
