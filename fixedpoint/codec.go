// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxWidth is the widest supported format. Every word of up to 53 bits
// decodes to an exact float64, so encode(decode(w)) == w holds for all of them.
const MaxWidth = 53

// wordBits is the size of the Word container.
const wordBits = 64

// Codec encodes and decodes words of one fixed Format. It is immutable after
// New and safe for concurrent use.
type Codec struct {
	format   Format
	overflow Overflow
	rounding Rounding

	mask Word    // low W bits set
	lo   float64 // smallest representable scaled integer
	hi   float64 // one past the largest representable scaled integer
}

// New builds a Codec for width W and fracBits F.
//
// Implementation:
//   - Stage 1: resolve options and validate the layout.
//   - Stage 2: precompute the word mask and the scaled-integer range [lo, hi).
//
// Errors:
//   - ErrInvalidWidth when W ∉ [1,MaxWidth], F < 1 or F > W.
func New(width, fracBits int, opts ...Option) (*Codec, error) {
	o := gatherOptions(opts...)
	f := Format{Width: width, FracBits: fracBits, Signed: o.signed}
	if err := f.Validate(); err != nil {
		return nil, codecErrorf(opNew, fmt.Errorf("%w: width=%d frac=%d", err, width, fracBits))
	}

	c := &Codec{
		format:   f,
		overflow: o.overflow,
		rounding: o.rounding,
		mask:     Word(math.MaxUint64) >> (wordBits - width),
	}
	if f.Signed {
		c.lo = -math.Ldexp(1, width-1)
		c.hi = math.Ldexp(1, width-1)
	} else {
		c.lo = 0
		c.hi = math.Ldexp(1, width)
	}

	return c, nil
}

// MustNew is New for static formats known to be valid; it panics otherwise.
func MustNew(width, fracBits int, opts ...Option) *Codec {
	c, err := New(width, fracBits, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Format returns the codec's bit layout.
func (c *Codec) Format() Format { return c.format }

// Overflow returns the configured overflow policy.
func (c *Codec) Overflow() Overflow { return c.overflow }

// Rounding returns the configured rounding mode.
func (c *Codec) Rounding() Rounding { return c.rounding }

// Mask returns a word with the low W bits set.
func (c *Codec) Mask() Word { return c.mask }

// LSB is the value of one unit in the last place, 2^-F.
func (c *Codec) LSB() float64 { return math.Ldexp(1, -c.format.FracBits) }

// Min is the smallest representable value.
func (c *Codec) Min() float64 { return math.Ldexp(c.lo, -c.format.FracBits) }

// Max is the largest representable value.
func (c *Codec) Max() float64 { return math.Ldexp(c.hi-1, -c.format.FracBits) }

// Decode interprets the low W bits of w as a fixed-point value.
// Signed formats sign-extend from bit W-1 (equivalently: subtract 2^W when the
// sign bit is set). Every W-bit input is valid.
func (c *Codec) Decode(w Word) float64 {
	w &= c.mask
	if !c.format.Signed {
		return math.Ldexp(float64(w), -c.format.FracBits)
	}
	shift := wordBits - c.format.Width
	s := int64(w<<shift) >> shift // arithmetic shift sign-extends bit W-1
	return math.Ldexp(float64(s), -c.format.FracBits)
}

// DecodeChecked is Decode for words from untrusted input: a word with bits
// above W is rejected instead of masked.
func (c *Codec) DecodeChecked(w Word) (float64, error) {
	if w&^c.mask != 0 {
		return 0, codecErrorf(opDecode, fmt.Errorf("%w: %#x does not fit %d bits", ErrWordRange, uint64(w), c.format.Width))
	}
	return c.Decode(w), nil
}

// Encode scales v by 2^F, rounds it and maps it to a W-bit word.
//
// Implementation:
//   - Stage 1: reject NaN/Inf.
//   - Stage 2: scale and round per the configured Rounding.
//   - Stage 3: out-of-range integers are wrapped, clamped or rejected per the
//     configured Overflow policy.
//
// Under Wrap a negative in-range value lands in [2^(W-1), 2^W) exactly as
// adding 2^W would; an out-of-range value keeps only its low W bits.
func (c *Codec) Encode(v float64) (Word, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, codecErrorf(opEncode, ErrNotFinite)
	}

	r := c.round(math.Ldexp(v, c.format.FracBits))
	if r < c.lo || r >= c.hi {
		switch c.overflow {
		case Saturate:
			if r < c.lo {
				r = c.lo
			} else {
				return c.maxWord(), nil
			}
		case Reject:
			return 0, codecErrorf(opEncode, fmt.Errorf("%w: %g not in [%g, %g]", ErrOverflow, v, c.Min(), c.Max()))
		}
	}

	return c.wrapBits(r), nil
}

// round applies the configured rounding mode to an already scaled value.
func (c *Codec) round(x float64) float64 {
	if c.rounding == TowardZero {
		return math.Trunc(x)
	}
	return math.Round(x) // ties away from zero
}

// maxWord is the word of the largest representable value.
func (c *Codec) maxWord() Word {
	if c.format.Signed {
		return c.mask >> 1
	}
	return c.mask
}

// wrapBits reduces the integral value r modulo 2^W and returns the low W bits.
// math.Mod is exact for a power-of-two modulus and leaves |m| < 2^W <= 2^53,
// so the int64 conversion is exact and masking yields the two's-complement
// pattern of negative residues.
func (c *Codec) wrapBits(r float64) Word {
	m := math.Mod(r, math.Ldexp(1, c.format.Width))
	return Word(int64(m)) & c.mask
}

// FormatHex renders w as "0x" followed by exactly HexDigits() zero-padded
// upper-case hex digits.
func (c *Codec) FormatHex(w Word) string {
	return fmt.Sprintf("0x%0*X", c.format.HexDigits(), uint64(w&c.mask))
}

// ParseHex parses a hex word with an optional 0x/0X prefix. Digits that set
// bits above W are rejected.
func (c *Codec) ParseHex(s string) (Word, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, codecErrorf(opParseHex, ErrBadHex)
	}
	v, err := strconv.ParseUint(s, 16, wordBits)
	if err != nil {
		return 0, codecErrorf(opParseHex, fmt.Errorf("%w: %v", ErrBadHex, err))
	}
	if Word(v)&^c.mask != 0 {
		return 0, codecErrorf(opParseHex, fmt.Errorf("%w: %q exceeds %d bits", ErrBadHex, s, c.format.Width))
	}
	return Word(v), nil
}

// String describes the codec, e.g. "Q16.16/wrap/half-away".
func (c *Codec) String() string {
	return fmt.Sprintf("%s/%s/%s", c.format, c.overflow, c.rounding)
}
