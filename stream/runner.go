// SPDX-License-Identifier: MIT

package stream

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunAll runs every driver to exhaustion, one goroutine each. The first
// error cancels the shared context and is returned; the other drivers stop
// at their next sample boundary.
//
// Errors:
//   - ErrSharedDriver when the same *Driver appears twice or is nil.
//   - the first Run error, annotated with the driver's position.
func RunAll(ctx context.Context, drivers ...*Driver) error {
	seen := make(map[*Driver]struct{}, len(drivers))
	for i, d := range drivers {
		if d == nil {
			return streamErrorf(opRunAll, fmt.Errorf("%w: driver %d is nil", ErrSharedDriver, i))
		}
		if _, dup := seen[d]; dup {
			return streamErrorf(opRunAll, fmt.Errorf("%w: driver %d", ErrSharedDriver, i))
		}
		seen[d] = struct{}{}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range drivers {
		i, d := i, d
		g.Go(func() error {
			if _, err := d.Run(ctx); err != nil {
				return streamErrorf(opRunAll, fmt.Errorf("driver %d: %w", i, err))
			}
			return nil
		})
	}
	return g.Wait()
}
