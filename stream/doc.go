// SPDX-License-Identifier: MIT

// Package stream drives a Welford accumulator from a sequence of fixed-point
// samples and checks the result against a hardware reference trace.
//
// A Driver is built from a Config (YAML-friendly: format width, fractional
// bits, overflow and rounding policy, accumulator kind and shape). Samples
// arrive either pushed (PushWords, PushFloats) or pulled from a Source
// (Step, Run). After each sample the driver keeps a Report; Encode renders
// that report back to fixed-point hex words in a fixed section layout:
//
//	# mean
//	0x00058000 0x00068000 0x00078000 0x0009E666
//	# covariance
//	...
//	# variance
//	...
//	# total
//	0x002D4962
//
// CompareTrace diffs the encoding against a reference dump digit for digit
// and lists every differing position. RunAll runs independent drivers
// concurrently.
//
// Malformed input words (bits above the format width) and wrong sample
// lengths are returned as errors and leave the accumulator untouched.
package stream
