// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage and kernels behind the
// streaming moment accumulators, plus batch variance and covariance used as
// oracles.
//
// The package provides:
//
//   - Dense: a row-major r×c matrix with bounds-checked At/Set, deep Clone,
//     Do/Apply visitors and an optional finite-only numeric policy.
//   - In-place accumulation kernels AddHadamard and AddOuter that update a
//     second-moment buffer without temporaries.
//   - Canonical linear algebra (Sub, Scale, Transpose, Mul, Hadamard,
//     Diagonal, Trace) as pure functions that allocate their result.
//   - Batch statistics (CenterColumns, Variance, Covariance) and AllClose for
//     tolerance comparisons in tests and trace checks.
//
// All loops run in a fixed i→j order so results are reproducible bit for bit
// for the same input sequence. Public functions never panic on user errors;
// they return sentinels from errors.go wrapped with an operation tag, so
// callers match with errors.Is.
//
// AI-Hints:
//   - Keep operands as *Dense; every kernel has a flat-slice fast path and a
//     generic At/Set fallback for other Matrix implementations.
package matrix
