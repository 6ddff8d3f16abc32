// SPDX-License-Identifier: MIT

package fixedpoint

import "fmt"

// Word holds a fixed-point value in its low W bits. Bits above W are ignored
// by Decode and are always zero in words produced by Encode.
type Word uint64

// Overflow selects what Encode does with a value whose scaled, rounded
// magnitude does not fit the format.
type Overflow int

const (
	// Wrap folds the value modulo 2^W (two's-complement truncation). This is
	// the hardware-faithful mode and the default.
	Wrap Overflow = iota

	// Saturate clamps the value to the nearest representable word.
	Saturate

	// Reject returns ErrOverflow.
	Reject
)

// String returns the lower-case policy name used in configuration files.
func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("overflow(%d)", int(o))
	}
}

// ParseOverflow maps a policy name ("wrap", "saturate", "reject") to its value.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "wrap", "":
		return Wrap, nil
	case "saturate":
		return Saturate, nil
	case "reject":
		return Reject, nil
	}
	return Wrap, fmt.Errorf("fixedpoint: unknown overflow policy %q", s)
}

// Rounding selects how the scaled value is turned into an integer.
type Rounding int

const (
	// HalfAwayFromZero rounds to the nearest integer, ties away from zero.
	HalfAwayFromZero Rounding = iota

	// TowardZero truncates the fractional part, like a plain integer cast.
	TowardZero
)

// String returns the lower-case mode name used in configuration files.
func (r Rounding) String() string {
	switch r {
	case HalfAwayFromZero:
		return "half-away"
	case TowardZero:
		return "truncate"
	default:
		return fmt.Sprintf("rounding(%d)", int(r))
	}
}

// ParseRounding maps a mode name ("half-away", "truncate") to its value.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "half-away", "":
		return HalfAwayFromZero, nil
	case "truncate":
		return TowardZero, nil
	}
	return HalfAwayFromZero, fmt.Errorf("fixedpoint: unknown rounding mode %q", s)
}

// Format describes the bit layout of a word.
type Format struct {
	Width    int  // total bits W, 1..MaxWidth
	FracBits int  // fractional bits F, 1..W
	Signed   bool // two's-complement when true
}

// String renders the format in Q notation: "Q16.16" for signed W=32,F=16,
// "UQ0.16" for unsigned W=16,F=16.
func (f Format) String() string {
	if f.Signed {
		return fmt.Sprintf("Q%d.%d", f.Width-f.FracBits, f.FracBits)
	}
	return fmt.Sprintf("UQ%d.%d", f.Width-f.FracBits, f.FracBits)
}

// Validate reports ErrInvalidWidth for layouts the codec cannot represent.
func (f Format) Validate() error {
	if f.Width < 1 || f.Width > MaxWidth {
		return ErrInvalidWidth
	}
	if f.FracBits < 1 || f.FracBits > f.Width {
		return ErrInvalidWidth
	}
	return nil
}

// HexDigits is the number of hexadecimal digits FormatHex emits: W/4 rounded up.
func (f Format) HexDigits() int {
	return (f.Width + 3) / 4
}
