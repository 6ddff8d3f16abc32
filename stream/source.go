// SPDX-License-Identifier: MIT

package stream

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvstat/fixedpoint"
)

// Source yields samples as raw fixed-point words, in arrival order.
// ok=false marks exhaustion; a Source is never rewound by the driver.
type Source interface {
	Next() (words []fixedpoint.Word, ok bool)
}

// SliceSource replays an in-memory list of samples.
type SliceSource struct {
	rows [][]fixedpoint.Word
	pos  int
}

var _ Source = (*SliceSource)(nil)

// NewSliceSource copies rows of any unsigned word type into a SliceSource.
func NewSliceSource[T constraints.Unsigned](rows [][]T) *SliceSource {
	out := make([][]fixedpoint.Word, len(rows))
	for i, row := range rows {
		out[i] = make([]fixedpoint.Word, len(row))
		for k, w := range row {
			out[i][k] = fixedpoint.Word(w)
		}
	}
	return &SliceSource{rows: out}
}

// Next returns the next sample, or ok=false once every row was returned.
func (s *SliceSource) Next() ([]fixedpoint.Word, bool) {
	if s.pos >= len(s.rows) {
		return nil, false
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true
}

// Len is the number of samples not yet returned.
func (s *SliceSource) Len() int { return len(s.rows) - s.pos }
