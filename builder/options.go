// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes a builder call. Constructors panic on values that can
// never be valid.
type Option func(*builderConfig)

// WithRand shares r across builder calls so composed fixtures draw from one
// stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed gives the call its own rng seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the peak value of pulses and chirps. Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) { c.amplitude = A }
}

// WithFrequency sets the base frequency in cycles/sample. For chirps it is
// the start frequency; the sweep ends at twice that. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) { c.frequency = f0 }
}

// WithDuty sets the rectangular pulse duty cycle. Values outside [0,1] are
// reported by BuildPulse as ErrOptionViolation.
func WithDuty(d float64) Option {
	return func(c *builderConfig) { c.duty = d }
}

// WithTriangular switches BuildPulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *builderConfig) { c.triangular = true }
}

// WithTrend adds k*i to sample i.
func WithTrend(k float64) Option {
	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise adds Gaussian noise with standard deviation sigma. Panics if
// sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithOHLC sets the initial price, daily drift, daily volatility and the
// number of intraday steps for BuildOHLC. Panics on start <= 0, vol < 0 or
// steps < 1.
func WithOHLC(start, mu, vol float64, steps int) Option {
	if start <= 0 || vol < 0 || steps < 1 {
		panic("builder: WithOHLC(start<=0 || vol<0 || steps<1)")
	}
	return func(c *builderConfig) {
		c.ohlcStart, c.ohlcMu, c.ohlcVol, c.ohlcSteps = start, mu, vol, steps
	}
}
