// SPDX-License-Identifier: MIT

package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/fixedpoint"
	"github.com/katalvlaran/lvstat/lut"
	"github.com/katalvlaran/lvstat/stream"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := stream.ParseConfig([]byte("rows: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, stream.DefaultWidth, cfg.Width)
	assert.Equal(t, stream.DefaultFracBits, cfg.FracBits)
	assert.Equal(t, stream.KindCovariance, cfg.Kind)
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 1, cfg.Cols)
	assert.Nil(t, cfg.Reciprocal)
}

func TestParseConfig_ExplicitWidthDefaultsFrac(t *testing.T) {
	t.Parallel()

	cfg, err := stream.ParseConfig([]byte("width: 16\nrows: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.FracBits)

	cfg, err = stream.ParseConfig([]byte("width: 12\nrows: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.FracBits)

	cfg, err = stream.ParseConfig([]byte("width: 24\nrows: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, stream.DefaultFracBits, cfg.FracBits)
}

func TestConfigValidate_WidthBounds(t *testing.T) {
	t.Parallel()

	cfg := stream.Config{Rows: 2, Width: fixedpoint.MaxWidth, FracBits: 1}
	require.NoError(t, cfg.Validate())

	for _, bad := range []stream.Config{
		{Rows: 2, Width: fixedpoint.MaxWidth + 1, FracBits: 16},
		{Rows: 2, Width: 64, FracBits: 16},
		{Rows: 2, Width: 16, FracBits: -1},
		{Rows: 2, Reciprocal: &stream.ReciprocalConfig{Width: 64}},
	} {
		err := bad.Validate()
		require.ErrorIs(t, err, stream.ErrInvalidConfig, "%+v", bad)
	}

	_, err := stream.New(stream.Config{Rows: 2, Width: 64, FracBits: 32})
	require.ErrorIs(t, err, stream.ErrInvalidConfig)
}

func TestParseConfig_Full(t *testing.T) {
	t.Parallel()

	src := `
width: 16
frac_bits: 8
overflow: saturate
rounding: truncate
kind: elementwise
rows: 2
cols: 3
reciprocal: {}
`
	cfg, err := stream.ParseConfig([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, stream.Config{
		Width:      16,
		FracBits:   8,
		Overflow:   "saturate",
		Rounding:   "truncate",
		Kind:       stream.KindElementWise,
		Rows:       2,
		Cols:       3,
		Reciprocal: &stream.ReciprocalConfig{Size: lut.DefaultSize, Width: lut.DefaultWidth},
	}, cfg)
}

func TestParseConfig_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := stream.ParseConfig([]byte("rows: 2\nframe_bits: 3\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "frame_bits")
}

func TestConfigValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := stream.Config{
		Width:    70,
		FracBits: -1,
		Overflow: "clip",
		Rounding: "banker",
		Kind:     "histogram",
		Reciprocal: &stream.ReciprocalConfig{
			Size: 1,
		},
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, stream.ErrInvalidConfig)
	for _, want := range []string{"width", "frac_bits", `"clip"`, `"banker"`, `"histogram"`, "reciprocal.size"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestConfigValidate_CovarianceShape(t *testing.T) {
	t.Parallel()

	cfg := stream.Config{Rows: 3, Cols: 2}
	err := cfg.Validate()
	require.ErrorIs(t, err, stream.ErrInvalidConfig)
	assert.ErrorContains(t, err, "cols must be 1")

	cfg = stream.Config{Kind: stream.KindElementWise, Rows: 3}
	require.ErrorIs(t, cfg.Validate(), stream.ErrInvalidConfig)
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := stream.Config{Rows: 4, Rounding: "truncate"}
	require.NoError(t, cfg.Validate())
	b, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := stream.ParseConfig(b)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
