// SPDX-License-Identifier: MIT

package builder

import "math"

const tau = 2 * math.Pi

// BuildChirp returns n samples of dim linear chirps. The instantaneous
// frequency sweeps from f0 to 2*f0 over the n samples; column k starts at
// phase k*2π/dim.
//
//	fᵢ   = f0 + f0 * i/(n−1)
//	θᵢ₊₁ = θᵢ + 2π·fᵢ
//	yᵢₖ  = A·sin(θᵢ + k·2π/dim) + trend·i + noise
//
// Errors:
//   - ErrBadSize if n < 1 or dim < 1.
func BuildChirp(n, dim int, opts ...Option) ([][]float64, error) {
	if n < 1 || dim < 1 {
		return nil, builderErrorf(MethodChirp, ErrBadSize, "n=%d dim=%d", n, dim)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg)

	f0, f1 := cfg.frequency, 2*cfg.frequency
	out := newSamples(n, dim)
	theta := 0.0
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		for k := 0; k < dim; k++ {
			v := cfg.amplitude*math.Sin(theta+tau*float64(k)/float64(dim)) + cfg.trendK*float64(i)
			if cfg.noiseSigma > 0 {
				v += cfg.noiseSigma * rng.NormFloat64()
			}
			out[i][k] = v
		}
	}
	return out, nil
}
