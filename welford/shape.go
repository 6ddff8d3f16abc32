// SPDX-License-Identifier: MIT

package welford

import "fmt"

// Shape is the fixed r×c layout of the samples a tracker accepts. Vector
// samples use Cols == 1.
type Shape struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Vec is the shape of a length-n column vector.
func Vec(n int) Shape { return Shape{Rows: n, Cols: 1} }

// Len is the number of elements, Rows*Cols.
func (s Shape) Len() int { return s.Rows * s.Cols }

// Validate rejects non-positive dimensions.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShape, s)
	}
	return nil
}

func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
