// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig holds resolved options. Builders read it once per call.
type builderConfig struct {
	rng *rand.Rand // nil until WithSeed/WithRand; noise then uses defaultSeed

	amplitude  float64 // >0
	frequency  float64 // >0, cycles/sample
	duty       float64 // [0,1], rectangular pulses only
	triangular bool
	trendK     float64 // added per sample index
	noiseSigma float64 // >=0, 0 disables noise

	ohlcStart float64 // initial price >0
	ohlcMu    float64 // daily drift
	ohlcVol   float64 // daily volatility >=0
	ohlcSteps int     // intraday steps >=1
}

const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125 // period of 8 samples
	defaultDuty       = 0.5
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultSeed       = int64(1)

	defaultOHLCStart = 100.0
	defaultOHLCMu    = 0.0005
	defaultOHLCVol   = 0.02
	defaultOHLCSteps = 8
)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		duty:       defaultDuty,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		ohlcStart:  defaultOHLCStart,
		ohlcMu:     defaultOHLCMu,
		ohlcVol:    defaultOHLCVol,
		ohlcSteps:  defaultOHLCSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom returns the shared rng if one was configured, else a fresh source
// seeded with defaultSeed so unseeded calls stay reproducible.
func rngFrom(cfg builderConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(defaultSeed))
}
