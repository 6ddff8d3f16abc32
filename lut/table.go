// SPDX-License-Identifier: MIT

package lut

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvstat/fixedpoint"
)

// Defaults of the reference table.
const (
	DefaultSize  = 1024
	DefaultWidth = 16
)

const minCount = 2

// Table is an immutable reciprocal table. Safe for concurrent reads.
type Table struct {
	codec   *fixedpoint.Codec
	entries []fixedpoint.Word // entries[k] for k in [minCount, size]; lower slots unused
}

// New builds a table for counts [2, size] with wdReal-bit entries.
//
// Implementation:
//   - Stage 1: validate size; build an unsigned UQ0.wdReal codec.
//   - Stage 2: encode 1/k for every k, rounding half away from zero.
//
// Errors:
//   - ErrInvalidSize when size < 2.
//   - fixedpoint.ErrInvalidWidth for wdReal outside [1,fixedpoint.MaxWidth].
//   - fixedpoint.ErrOverflow when an entry does not fit (cannot happen for
//     k >= 2, since 1/k <= 0.5 < 1).
func New(size, wdReal int) (*Table, error) {
	if size < minCount {
		return nil, fmt.Errorf("lut.New: %w: %d", ErrInvalidSize, size)
	}
	codec, err := fixedpoint.New(wdReal, wdReal,
		fixedpoint.WithUnsigned(),
		fixedpoint.WithOverflow(fixedpoint.Reject),
		fixedpoint.WithRounding(fixedpoint.HalfAwayFromZero),
	)
	if err != nil {
		return nil, fmt.Errorf("lut.New: %w", err)
	}

	t := &Table{codec: codec, entries: make([]fixedpoint.Word, size+1)}
	for k := minCount; k <= size; k++ {
		w, err := codec.Encode(1 / float64(k))
		if err != nil {
			return nil, fmt.Errorf("lut.New: k=%d: %w", k, err)
		}
		t.entries[k] = w
	}
	return t, nil
}

// MustDefault is New(DefaultSize, DefaultWidth); it cannot fail.
func MustDefault() *Table {
	t, err := New(DefaultSize, DefaultWidth)
	if err != nil {
		panic(err)
	}
	return t
}

// Size is the largest covered count.
func (t *Table) Size() int { return len(t.entries) - 1 }

// Width is the entry width WD in bits.
func (t *Table) Width() int { return t.codec.Format().Width }

// IndexWidth is the number of address bits needed for counts up to Size,
// ceil(log2(Size)).
func (t *Table) IndexWidth() int { return bits.Len(uint(t.Size() - 1)) }

// Codec is the unsigned codec the entries are encoded with.
func (t *Table) Codec() *fixedpoint.Codec { return t.codec }

// Inv is the entry for k, or 0 outside [2, Size].
func (t *Table) Inv(k int) fixedpoint.Word {
	if k < minCount || k >= len(t.entries) {
		return 0
	}
	return t.entries[k]
}

// Prev is the entry for k-1, or 0 when k-1 is outside the table.
func (t *Table) Prev(k int) fixedpoint.Word { return t.Inv(k - 1) }

// Next is the entry for k+1, or 0 when k+1 is outside the table.
func (t *Table) Next(k int) fixedpoint.Word { return t.Inv(k + 1) }

// Reciprocal decodes the entry for n. ok is false when n is not covered.
func (t *Table) Reciprocal(n int) (float64, bool) {
	if n < minCount || n >= len(t.entries) {
		return 0, false
	}
	return t.codec.Decode(t.entries[n]), true
}

// Words returns the entries for k = 2..Size in order.
func (t *Table) Words() []fixedpoint.Word {
	out := make([]fixedpoint.Word, len(t.entries)-minCount)
	copy(out, t.entries[minCount:])
	return out
}
