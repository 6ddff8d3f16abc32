// SPDX-License-Identifier: MIT

// Package fixedpoint converts between real values and the signed (or
// unsigned) two's-complement words used by fixed-point hardware pipelines.
//
// A Codec is configured once with a total width W (1..53 bits) and a number
// of fractional bits F (1..W). A word w represents the value w / 2^F, where w
// is first sign-extended from bit W-1 for signed formats.
//
// ⚙️ Policies:
//
//   - Overflow: Wrap (default) folds out-of-range values modulo 2^W exactly as
//     a hardware register truncates them; Saturate clamps to the representable
//     range; Reject returns ErrOverflow.
//   - Rounding: HalfAwayFromZero (default) or TowardZero.
//
// Usage:
//
//	c, err := fixedpoint.New(32, 16) // Q16.16, wrap, half-away rounding
//	w, _ := c.Encode(-1.5)           // 0xFFFE8000
//	fmt.Println(c.FormatHex(w))      // "0xFFFE8000"
//	fmt.Println(c.Decode(w))         // -1.5
//
// Round trips hold within one LSB: Decode(Encode(x)) == x ± 2^-F for every
// representable x, and Encode(Decode(w)) == w for every W-bit word w.
package fixedpoint
