// SPDX-License-Identifier: MIT

package builder

import "math"

const (
	triDouble = 2.0 // triangular wave: 1 - |2*frac - 1|
	triCenter = 1.0
)

// BuildPulse returns n samples of dim pulse channels. Column k runs at
// frequency f0*(k+1), so columns are correlated but not identical.
//
// Shape:
//   - Rectangular: y ∈ {0, A}, on while the phase fraction is below duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (WithTriangular).
//
// Trend (k*i) and noise (sigma*N(0,1)) are added after the base waveform;
// noise is drawn row-major.
//
// Errors:
//   - ErrBadSize if n < 1 or dim < 1.
//   - ErrOptionViolation if duty ∉ [0,1].
func BuildPulse(n, dim int, opts ...Option) ([][]float64, error) {
	if n < 1 || dim < 1 {
		return nil, builderErrorf(MethodPulse, ErrBadSize, "n=%d dim=%d", n, dim)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.duty < 0 || cfg.duty > 1 {
		return nil, builderErrorf(MethodPulse, ErrOptionViolation, "duty=%g", cfg.duty)
	}
	rng := rngFrom(cfg)

	out := newSamples(n, dim)
	for i := 0; i < n; i++ {
		for k := 0; k < dim; k++ {
			frac := math.Mod(float64(i)*cfg.frequency*float64(k+1), 1)
			var base float64
			switch {
			case cfg.triangular:
				base = cfg.amplitude * (1 - math.Abs(triDouble*frac-triCenter))
			case frac < cfg.duty:
				base = cfg.amplitude
			}
			base += cfg.trendK * float64(i)
			if cfg.noiseSigma > 0 {
				base += cfg.noiseSigma * rng.NormFloat64()
			}
			out[i][k] = base
		}
	}
	return out, nil
}

// newSamples allocates n rows of dim columns over one backing array.
func newSamples(n, dim int) [][]float64 {
	flat := make([]float64, n*dim)
	out := make([][]float64, n)
	for i := range out {
		out[i] = flat[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return out
}
