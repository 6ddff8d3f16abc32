// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvstat/matrix"
)

// ExampleCovariance computes the sample covariance of two perfectly
// correlated features.
func ExampleCovariance() {
	X, _ := matrix.NewFromRows([][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
	})
	cov, means, _ := matrix.Covariance(X)
	tr, _ := matrix.Trace(cov)

	fmt.Println("means:", means)
	fmt.Print(cov)
	fmt.Println("trace:", tr)

	// Output:
	// means: [2 4]
	// [1, 2]
	// [2, 4]
	// trace: 5
}

// ExampleAddOuter shows the in-place rank-one update used by streaming
// covariance.
func ExampleAddOuter() {
	m2, _ := matrix.NewDense(2, 2)
	_ = matrix.AddOuter(m2, []float64{1, -1}, []float64{0.5, -0.5})
	fmt.Print(m2)

	// Output:
	// [0.5, -0.5]
	// [-0.5, 0.5]
}
