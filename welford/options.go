// SPDX-License-Identifier: MIT

package welford

// Reciprocal supplies 1/n for the mean update. ok=false means n is not
// covered and the accumulator divides instead.
//
// A lookup table of rounded reciprocals lets the float model follow a
// hardware datapath that multiplies by a stored 1/count rather than
// dividing.
type Reciprocal interface {
	Reciprocal(n int) (inv float64, ok bool)
}

const panicNilReciprocal = "welford: WithReciprocal: nil Reciprocal"

// Option configures an Accumulator or tracker.
type Option func(*options)

type options struct {
	recip Reciprocal
}

// WithReciprocal makes the mean update use mean += delta * r.Reciprocal(count)
// whenever r covers count. Panics on a nil r.
func WithReciprocal(r Reciprocal) Option {
	if r == nil {
		panic(panicNilReciprocal)
	}
	return func(o *options) { o.recip = r }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
