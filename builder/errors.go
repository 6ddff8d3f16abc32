// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid sample count or dimension (n < 1, dim < 1).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates a resolved option combination that cannot
// produce data, e.g. a pulse duty outside [0,1].
var ErrOptionViolation = errors.New("builder: invalid option value")

// Method names used as error prefixes.
const (
	MethodPulse    = "Pulse"
	MethodChirp    = "Chirp"
	MethodOHLC     = "OHLC"
	MethodQuantize = "Quantize"
)

// builderErrorf prefixes err with the builder method, keeping the sentinel
// reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
