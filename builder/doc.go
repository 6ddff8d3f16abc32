// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic sample streams for
// tests, benchmarks and demos of the welford and stream packages.
//
// Every builder returns n samples of a fixed dimension as [][]float64, one
// slice per sample:
//
//   - BuildPulse: rectangular or triangular pulse train per column.
//   - BuildChirp: linear frequency sweep per column, phase-shifted by column.
//   - BuildOHLC:  four columns (open, high, low, close) from a discrete
//     geometric Brownian motion.
//
// Output depends only on (n, dim, options). Noise and OHLC paths draw from a
// *rand.Rand seeded by WithSeed (or shared via WithRand), so two calls with
// the same options return identical data.
//
// Permute reorders samples deterministically; Quantize turns samples into
// fixed-point words for a stream.Source.
//
// Option constructors panic on meaningless values (WithAmplitude(0),
// WithNoise(-1), WithRand(nil)). Builders themselves never panic; invalid
// sizes return ErrBadSize.
package builder
