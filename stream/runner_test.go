// SPDX-License-Identifier: MIT

package stream_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/fixedpoint"
	"github.com/katalvlaran/lvstat/stream"
)

func TestRunAll_IndependentDrivers(t *testing.T) {
	t.Parallel()

	drivers := make([]*stream.Driver, 4)
	for i := range drivers {
		drivers[i] = newDriver(t, stream.Config{Rows: 4, Rounding: "truncate"},
			stream.WithSource(stream.NewSliceSource(q16Samples)))
	}
	require.NoError(t, stream.RunAll(context.Background(), drivers...))

	for _, d := range drivers {
		assert.True(t, d.Exhausted())
		require.NoError(t, d.CompareTrace(q16TruncateTrace))
	}
}

func TestRunAll_FirstErrorWins(t *testing.T) {
	t.Parallel()

	good := newDriver(t, stream.Config{Rows: 4}, stream.WithSource(stream.NewSliceSource(q16Samples)))
	bad := newDriver(t, stream.Config{Rows: 1, Width: 8, FracBits: 4},
		stream.WithSource(stream.NewSliceSource([][]uint16{{0x10}, {0x100}})))

	err := stream.RunAll(context.Background(), good, bad)
	require.ErrorIs(t, err, fixedpoint.ErrWordRange)
	assert.ErrorContains(t, err, "driver 1")
}

func TestRunAll_RejectsSharedDriver(t *testing.T) {
	t.Parallel()

	d := newDriver(t, stream.Config{Rows: 4}, stream.WithSource(stream.NewSliceSource(q16Samples)))
	require.ErrorIs(t, stream.RunAll(context.Background(), d, d), stream.ErrSharedDriver)
	require.ErrorIs(t, stream.RunAll(context.Background(), d, nil), stream.ErrSharedDriver)
	assert.Zero(t, d.Count())

	require.NoError(t, stream.RunAll(context.Background()))
}
