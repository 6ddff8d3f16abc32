// SPDX-License-Identifier: MIT

package lut

import "errors"

// ErrInvalidSize is returned when the table would not cover k = 2.
var ErrInvalidSize = errors.New("lut: size must be >= 2")
