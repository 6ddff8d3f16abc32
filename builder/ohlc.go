// SPDX-License-Identifier: MIT

package builder

import "math"

// OHLC column indices in samples returned by BuildOHLC.
const (
	ColOpen = iota
	ColHigh
	ColLow
	ColClose
	ohlcDim
)

// BuildOHLC returns one four-column sample (open, high, low, close) per
// trading day. Prices follow a discrete geometric Brownian motion with
// WithOHLC's drift and volatility split over the intraday steps:
//
//	S_{t+1} = S_t · exp((μ − σ²/2)Δt + σ√Δt·Z),  Δt = 1/steps, Z ~ N(0,1)
//
// Invariants per row: low ≤ min(open, close) and high ≥ max(open, close).
// The first open is the configured start price; each open equals the
// previous close.
//
// Errors:
//   - ErrBadSize if days < 1.
func BuildOHLC(days int, opts ...Option) ([][]float64, error) {
	if days < 1 {
		return nil, builderErrorf(MethodOHLC, ErrBadSize, "days=%d", days)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg)

	dt := 1 / float64(cfg.ohlcSteps)
	drift := (cfg.ohlcMu - 0.5*cfg.ohlcVol*cfg.ohlcVol) * dt
	scale := cfg.ohlcVol * math.Sqrt(dt)

	out := newSamples(days, ohlcDim)
	s := cfg.ohlcStart
	for d := range out {
		open, high, low := s, s, s
		for step := 0; step < cfg.ohlcSteps; step++ {
			s *= math.Exp(drift + scale*rng.NormFloat64())
			high = math.Max(high, s)
			low = math.Min(low, s)
		}
		row := out[d]
		row[ColOpen], row[ColHigh], row[ColLow], row[ColClose] = open, high, low, s
	}
	return out, nil
}
