// SPDX-License-Identifier: MIT

// Package welford implements single-pass running mean, variance and
// covariance with Welford's recurrence.
//
// One Accumulator owns the recurrence
//
//	count++
//	delta  = x - mean
//	mean  += delta / count
//	delta2 = x - mean        (updated mean)
//	M2    += delta ⊗ delta2
//
// and delegates the M2 update to a SecondMoment container:
//
//   - ElementWise keeps one M2 per element (M2 += delta∘delta2) and
//     normalizes by count, the population (biased) variance.
//   - CrossProduct keeps a d×d M2 (M2 += delta·delta2ᵀ) and normalizes by
//     count-1, the sample (unbiased) covariance.
//
// Tracker pairs an element-wise accumulator with an overall scalar one fed
// every element of every sample; CovarianceTracker wraps a cross-product
// accumulator and derives the per-variable variance and total variance.
//
// Accumulators are single-owner values: no locks, fixed loop order, no
// parallel reduction. Feeding the same samples in the same order yields
// bit-identical results. A rejected sample leaves the accumulator exactly as
// it was.
package welford
