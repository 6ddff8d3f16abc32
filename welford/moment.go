// SPDX-License-Identifier: MIT

package welford

import (
	"fmt"

	"github.com/katalvlaran/lvstat/matrix"
)

// SecondMoment is the M2 container an Accumulator updates. Implementations
// decide the M2 layout and the normalizer that turns M2 into a variance or
// covariance.
type SecondMoment interface {
	// Dim is the sample length the container expects.
	Dim() int

	// Accumulate folds one update into M2. delta is x minus the mean before
	// the update, delta2 is x minus the updated mean; both have length Dim.
	// On error M2 is unchanged.
	Accumulate(delta, delta2 []float64) error

	// Normalize returns a fresh matrix holding M2 divided by the
	// container's normalizer for count samples, or zeros when count < 2.
	Normalize(count int) *matrix.Dense

	// M2 returns a copy of the raw sum of products.
	M2() *matrix.Dense

	// Reset zeroes M2 without reallocating.
	Reset()
}

// ElementWise keeps an independent M2 per element. Normalize divides by
// count: the population variance of each element.
type ElementWise struct {
	m2 *matrix.Dense
}

// CrossProduct keeps a d×d M2 of cross products. Normalize divides by
// count-1: the sample covariance.
type CrossProduct struct {
	m2 *matrix.Dense
}

var (
	_ SecondMoment = (*ElementWise)(nil)
	_ SecondMoment = (*CrossProduct)(nil)
)

// NewElementWise allocates an element-wise M2 of the given shape.
func NewElementWise(shape Shape) (*ElementWise, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	m2, err := matrix.NewDense(shape.Rows, shape.Cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return &ElementWise{m2: m2}, nil
}

func (e *ElementWise) Dim() int { return e.m2.Len() }

func (e *ElementWise) Accumulate(delta, delta2 []float64) error {
	return matrix.AddHadamard(e.m2, delta, delta2)
}

func (e *ElementWise) Normalize(count int) *matrix.Dense {
	if count < 2 {
		return zerosLike(e.m2)
	}
	return divided(e.m2, float64(count))
}

func (e *ElementWise) M2() *matrix.Dense { return e.m2.CloneDense() }

func (e *ElementWise) Reset() { e.m2.Zero() }

// NewCrossProduct allocates a d×d cross-product M2.
func NewCrossProduct(dim int) (*CrossProduct, error) {
	if err := Vec(dim).Validate(); err != nil {
		return nil, err
	}
	m2, err := matrix.NewDense(dim, dim, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return &CrossProduct{m2: m2}, nil
}

func (c *CrossProduct) Dim() int { return c.m2.Rows() }

// Accumulate adds the outer product delta·delta2ᵀ. The per-step term is not
// symmetric, but the running sum is symmetric in exact arithmetic.
func (c *CrossProduct) Accumulate(delta, delta2 []float64) error {
	return matrix.AddOuter(c.m2, delta, delta2)
}

func (c *CrossProduct) Normalize(count int) *matrix.Dense {
	if count < 2 {
		return zerosLike(c.m2)
	}
	return divided(c.m2, float64(count-1))
}

func (c *CrossProduct) M2() *matrix.Dense { return c.m2.CloneDense() }

func (c *CrossProduct) Reset() { c.m2.Zero() }

// divided returns m/den elementwise. Hex traces depend on the exact
// quotient, so this must stay a division and not a multiply by 1/den.
func divided(m *matrix.Dense, den float64) *matrix.Dense {
	out := m.CloneDense()
	_ = out.Apply(func(_, _ int, v float64) float64 { return v / den }) // policy off: cannot fail
	return out
}

func zerosLike(m *matrix.Dense) *matrix.Dense {
	out := m.CloneDense()
	out.Zero()
	return out
}
