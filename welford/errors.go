// SPDX-License-Identifier: MIT

package welford

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a tracker is built with a non-positive
	// dimension.
	ErrInvalidShape = errors.New("welford: invalid shape")

	// ErrShapeMismatch is returned when a sample's shape differs from the
	// shape fixed at construction. The accumulator is left unchanged.
	ErrShapeMismatch = errors.New("welford: sample shape mismatch")

	// ErrNotFinite is returned for samples holding NaN or ±Inf. The
	// accumulator is left unchanged.
	ErrNotFinite = errors.New("welford: sample is not finite")
)

const (
	opNewAccumulator = "NewAccumulator"
	opAdd            = "Accumulator.Add"
	opUpdate         = "Tracker.Update"
	opCovUpdate      = "CovarianceTracker.Update"
)

func welfordErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
