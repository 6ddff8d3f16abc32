// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Batch statistics over a sample matrix X (rows = observations,
//     cols = features), composed from the canonical kernels.
//   - These two-pass routines are the reference that streaming estimators
//     are checked against.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Variance(X)      -> (Var, means)  // population variance: Σ(Xc⊙Xc)/r
//   - Covariance(X)    -> (Cov, means)  // sample covariance: (Xcᵀ Xc)/(r-1)
//   - AllClose(a, b, rtol, atol)        // |a-b| ≤ atol + rtol*|b|

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opVariance      = "Variance"
	opCovariance    = "Covariance"
	opAllClose      = "AllClose"
)

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
//
// Implementation:
//   - Stage 1: validate X; sum each column in row order and divide by r.
//   - Stage 2: broadcast the means across rows and Sub them from X.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	src, ok := X.(*Dense)
	if !ok {
		var err error
		if src, err = toDense(X); err != nil {
			return nil, nil, matrixErrorf(opCenterColumns, err)
		}
	}

	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += src.data[base+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}

	bcast, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	for i = 0; i < r; i++ {
		copy(bcast.data[i*c:(i+1)*c], means)
	}
	out, err := Sub(src, bcast)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return out, means, nil
}

// Variance computes the population variance of each column of X:
//
//	Var[j] = Σ_i Xc[i,j]² / r
//
// Returns Var as a 1×c row and the column means.
//
// Implementation:
//   - Stage 1: CenterColumns(X).
//   - Stage 2: square deviations with Hadamard(Xc, Xc); sum each column in row
//     order and divide by r.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Variance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opVariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 1 {
		return nil, nil, matrixErrorf(opVariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opVariance, err)
	}
	sq, err := Hadamard(Xc, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opVariance, err)
	}
	out, err := NewDense(1, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opVariance, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j] += sq.data[i*c+j]
		}
	}
	for j := 0; j < c; j++ {
		out.data[j] /= float64(r)
	}

	return out, means, nil
}

// Covariance computes the unbiased sample covariance of the columns of X:
//
//	Cov = (Xcᵀ Xc) / (r-1)
//
// Returns Cov (c×c) and the column means.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
//
// AI-Hints:
//   - Two-pass centering is numerically the gold standard; use it to check
//     one-pass estimators within a relative tolerance.
func Covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds for every element.
// Negative tolerances are normalized to their absolute value; NaN never
// compares close.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances; ErrNilMatrix; ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// toDense copies an arbitrary Matrix into a Dense.
func toDense(m Matrix) (*Dense, error) {
	out, err := NewDense(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
