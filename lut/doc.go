// SPDX-License-Identifier: MIT

// Package lut holds an in-memory reciprocal table: for every count k in
// [2, Size] the entry is round(2^WD / k) stored as an unsigned WD-bit
// fixed-point word with WD fractional bits (1/2 is 0x8000 at WD=16).
//
// Inv, Prev and Next mirror the three lookups of a hardware table that
// serves 1/k, 1/(k-1) and 1/(k+1) from the same rows; any index outside the
// table yields 0, like the hardware default arm. A *Table satisfies
// welford.Reciprocal, so an accumulator can multiply by the stored
// reciprocal instead of dividing.
package lut
