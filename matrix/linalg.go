// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical pure kernels (Sub, Hadamard, Scale, Transpose, Mul)
//     and reductions (Diagonal, Trace).
//   - Every kernel allocates its result; operands are never mutated.
//
// Determinism & Performance:
//   - *Dense operands take flat-slice fast paths; other Matrix
//     implementations go through At/Set in fixed i→j order.

package matrix

import "fmt"

// Operation tags for unified error wrapping.
const (
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opDiagonal  = "Diagonal"
	opTrace     = "Trace"
)

// ZeroSum is the initial accumulator for reductions.
const ZeroSum = 0.0

// matrixErrorf prefixes err with an operation tag. The result formats as
// "<tag>: <underlying>" and still matches errors.Is/As. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: flat loop when both are *Dense; else i→j At/Set.
//
// Complexity: Time O(r*c), Space O(r*c).
func elementwise(tag string, a, b Matrix, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense(a.Rows(), a.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = f(da.data[k], db.data[k])
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			res.data[i*res.c+j] = f(av, bv)
		}
	}

	return res, nil
}

// Sub returns a - b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) {
	return elementwise(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard returns the elementwise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	return elementwise(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Scale returns alpha * m. alpha = 0 yields an explicit zero matrix of the
// same shape; NaN/Inf in alpha propagate.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for k, v := range dm.data {
			res.data[k] = alpha * v
		}
		return res, nil
	}

	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*res.c+j] = alpha * v
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new c×r matrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul returns the matrix product a*b (a: m×k, b: k×n → m×n).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(m, n).
//   - Stage 2: *Dense fast path in i-k-j order (row-major friendly,
//     skipping zero a[i,k]); generic i-j-k fallback via At.
//
// Complexity: Time O(m*k*n), Space O(m*n).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av, bv, current float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Diagonal returns the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = dm.data[i*n+i]
		}
		return out, nil
	}

	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
	}

	return out, nil
}

// Trace returns Σ m[i,i] of a square matrix, summed in index order.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	diag, err := Diagonal(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for _, v := range diag {
		sum += v
	}

	return sum, nil
}
