// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; the codec wraps them
// with an operation tag ("Encode: ...", "ParseHex: ...").
var (
	// ErrInvalidWidth is returned at construction when the width is outside
	// [1,MaxWidth], the fractional-bit count is not positive, or it exceeds
	// the width.
	ErrInvalidWidth = errors.New("fixedpoint: invalid width or fractional bits")

	// ErrOverflow is returned by Encode under the Reject policy when the
	// scaled value does not fit the format.
	ErrOverflow = errors.New("fixedpoint: value out of representable range")

	// ErrNotFinite is returned by Encode for NaN and ±Inf regardless of policy.
	ErrNotFinite = errors.New("fixedpoint: NaN or Inf cannot be encoded")

	// ErrWordRange is returned by DecodeChecked for a word with bits set
	// above the format width.
	ErrWordRange = errors.New("fixedpoint: word exceeds format width")

	// ErrBadHex is returned by ParseHex for empty, malformed or too wide input.
	ErrBadHex = errors.New("fixedpoint: malformed hexadecimal word")
)

// Operation tags used in wrapped errors.
const (
	opNew       = "New"
	opEncode    = "Encode"
	opEncodeAll = "EncodeAll"
	opParseHex  = "ParseHex"
	opDecode    = "DecodeChecked"
)

// codecErrorf wraps err with an operation tag, preserving it for errors.Is.
func codecErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
