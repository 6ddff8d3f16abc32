// SPDX-License-Identifier: MIT

package fixedpoint

// Defaults applied by New when no Option overrides them.
const (
	DefaultOverflow = Wrap
	DefaultRounding = HalfAwayFromZero
	DefaultSigned   = true
)

const (
	panicOverflowInvalid = "fixedpoint: WithOverflow: unknown policy"
	panicRoundingInvalid = "fixedpoint: WithRounding: unknown mode"
)

// Option customizes a Codec at construction. Option constructors panic on
// values that can never be valid (programmer error); New itself never panics.
type Option func(*options)

type options struct {
	overflow Overflow
	rounding Rounding
	signed   bool
}

func defaultOptions() options {
	return options{
		overflow: DefaultOverflow,
		rounding: DefaultRounding,
		signed:   DefaultSigned,
	}
}

// WithOverflow selects the overflow policy.
func WithOverflow(p Overflow) Option {
	if p < Wrap || p > Reject {
		panic(panicOverflowInvalid)
	}
	return func(o *options) { o.overflow = p }
}

// WithRounding selects the rounding mode.
func WithRounding(r Rounding) Option {
	if r < HalfAwayFromZero || r > TowardZero {
		panic(panicRoundingInvalid)
	}
	return func(o *options) { o.rounding = r }
}

// WithUnsigned switches the codec to an unsigned layout: no sign extension on
// Decode, representable range [0, 2^W-1] on Encode.
func WithUnsigned() Option {
	return func(o *options) { o.signed = false }
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
