// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DecodeAll decodes a slice of raw words of any integer type. Signed inputs
// are reinterpreted through their two's-complement bit pattern, so int32(-1)
// and uint32(0xFFFFFFFF) decode identically under a 32-bit codec.
// The result has len(words) entries, in input order.
func DecodeAll[T constraints.Integer](c *Codec, words []T) []float64 {
	out := make([]float64, len(words))
	for i, w := range words {
		out[i] = c.Decode(Word(w))
	}
	return out
}

// DecodeWords is DecodeAll specialised to Word.
func (c *Codec) DecodeWords(words []Word) []float64 {
	return DecodeAll(c, words)
}

// EncodeAll encodes values in order. The first failing element aborts the
// call; its index is part of the wrapped error.
func (c *Codec) EncodeAll(values []float64) ([]Word, error) {
	out := make([]Word, len(values))
	for i, v := range values {
		w, err := c.Encode(v)
		if err != nil {
			return nil, codecErrorf(opEncodeAll, fmt.Errorf("element %d: %w", i, err))
		}
		out[i] = w
	}
	return out, nil
}

// FormatHexAll renders each word with FormatHex.
func (c *Codec) FormatHexAll(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = c.FormatHex(w)
	}
	return out
}
