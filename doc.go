// Package lvstat computes running mean, variance and covariance over a
// stream of vector or matrix samples with Welford's online algorithm, and
// keeps the results bit-compatible with a fixed-point hardware pipeline.
//
// What is in the box?
//
//   - fixedpoint/: signed or unsigned W-bit, F-fraction-bit words: decode,
//     encode with a named overflow policy (wrap, saturate, reject) and
//     rounding mode (half-away, truncate), fixed-width hex.
//   - matrix/    : small dense matrices plus the in-place Hadamard and outer
//     product accumulation the moment containers need.
//   - welford/   : the recurrence itself, generic over a second-moment
//     container: element-wise (biased) or cross-product (unbiased).
//     Tracker and CovarianceTracker are the caller-facing accumulators.
//   - lut/       : reciprocal lookup table 1/k in UQ0.W, usable as the
//     accumulator's divider.
//   - stream/    : YAML-configured driver: fixed-point words in, reports
//     out, digit-for-digit comparison against a reference dump.
//   - builder/   : deterministic synthetic streams for tests and demos.
//
// Quick example:
//
//	cfg, _ := stream.ParseConfig([]byte("rows: 4\nrounding: truncate\n"))
//	d, _ := stream.New(cfg, stream.WithSource(stream.NewSliceSource(words)))
//	_, _ = d.Run(ctx)
//	err := d.CompareTrace(reference)
//
// Why Welford? The naive Σx² − n·x̄² form cancels catastrophically when the
// mean is large relative to the spread; the recurrence never subtracts two
// large sums.
//
//	go get github.com/katalvlaran/lvstat
package lvstat
