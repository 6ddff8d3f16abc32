// SPDX-License-Identifier: MIT

package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("stream: invalid config")

	// ErrTraceMismatch is returned by CompareTrace, once per differing
	// position, combined into a single error.
	ErrTraceMismatch = errors.New("stream: trace mismatch")

	// ErrMalformedTrace is returned when a reference dump cannot be parsed.
	ErrMalformedTrace = errors.New("stream: malformed trace")

	// ErrNoSource is returned by Step and Run on a driver without a Source.
	ErrNoSource = errors.New("stream: no source attached")

	// ErrSharedDriver is returned by RunAll when one Driver is passed twice.
	ErrSharedDriver = errors.New("stream: driver passed more than once")
)

const (
	opNew        = "stream.New"
	opPushWords  = "PushWords"
	opPushFloats = "PushFloats"
	opStep       = "Step"
	opEncode     = "Encode"
	opCompare    = "CompareTrace"
	opRunAll     = "RunAll"
)

func streamErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
