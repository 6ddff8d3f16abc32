// SPDX-License-Identifier: MIT

package stream

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstat/fixedpoint"
	"github.com/katalvlaran/lvstat/lut"
	"github.com/katalvlaran/lvstat/welford"
)

// Driver feeds one accumulator from an ordered stream of samples. It decodes
// fixed-point words, updates the accumulator, keeps the latest Report and
// re-encodes it for trace comparison.
//
// A Driver is single-owner: do not call its methods from more than one
// goroutine. Independent drivers may run concurrently (see RunAll).
type Driver struct {
	cfg    Config
	shape  welford.Shape
	codec  *fixedpoint.Codec
	logger *zap.Logger
	src    Source
	recip  welford.Reciprocal

	cov  *welford.CovarianceTracker // KindCovariance
	elem *welford.Tracker           // KindElementWise

	buf       []float64 // decoded sample scratch
	consumed  int       // samples pulled from src
	exhausted bool
	last      Report
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithReciprocal drives the mean update from r instead of dividing. It
// overrides Config.Reciprocal.
func WithReciprocal(r welford.Reciprocal) Option {
	return func(d *Driver) { d.recip = r }
}

// WithSource attaches the sample source Step and Run read from.
func WithSource(src Source) Option {
	return func(d *Driver) { d.src = src }
}

// New validates cfg and builds a driver with an empty accumulator.
//
// Errors:
//   - ErrInvalidConfig (every problem listed), fixedpoint.ErrInvalidWidth,
//     welford.ErrInvalidShape.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, streamErrorf(opNew, err)
	}
	codec, err := cfg.codec()
	if err != nil {
		return nil, streamErrorf(opNew, err)
	}

	d := &Driver{
		cfg:    cfg,
		shape:  welford.Shape{Rows: cfg.Rows, Cols: cfg.Cols},
		codec:  codec,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.recip == nil && cfg.Reciprocal != nil {
		tab, err := lut.New(cfg.Reciprocal.Size, cfg.Reciprocal.Width)
		if err != nil {
			return nil, streamErrorf(opNew, err)
		}
		d.recip = tab
	}

	var wopts []welford.Option
	if d.recip != nil {
		wopts = append(wopts, welford.WithReciprocal(d.recip))
	}
	switch cfg.Kind {
	case KindCovariance:
		d.cov, err = welford.NewCovarianceTracker(cfg.Rows, wopts...)
	default:
		d.elem, err = welford.NewTracker(d.shape, wopts...)
	}
	if err != nil {
		return nil, streamErrorf(opNew, err)
	}
	d.buf = make([]float64, d.shape.Len())
	d.last = d.query()

	d.logger.Debug("stream driver ready",
		zap.String("kind", string(cfg.Kind)),
		zap.Stringer("shape", d.shape),
		zap.Stringer("codec", codec),
		zap.Bool("reciprocal", d.recip != nil),
	)
	return d, nil
}

// Config returns the validated configuration, defaults filled in.
func (d *Driver) Config() Config { return d.cfg }

// Codec is the fixed-point codec used to decode input and encode reports.
func (d *Driver) Codec() *fixedpoint.Codec { return d.codec }

// Attach replaces the source and clears the exhausted flag.
func (d *Driver) Attach(src Source) {
	d.src = src
	d.exhausted = false
}

// PushWords decodes one sample of fixed-point words and folds it in.
//
// Errors:
//   - fixedpoint.ErrWordRange for a word wider than the format;
//     welford.ErrShapeMismatch for a wrong sample length. The accumulator is
//     unchanged on error.
func (d *Driver) PushWords(words []fixedpoint.Word) (Report, error) {
	if len(words) != len(d.buf) {
		return Report{}, streamErrorf(opPushWords, fmt.Errorf("%w: got %d words, want %d", welford.ErrShapeMismatch, len(words), len(d.buf)))
	}
	for k, w := range words {
		v, err := d.codec.DecodeChecked(w)
		if err != nil {
			return Report{}, streamErrorf(opPushWords, fmt.Errorf("word %d: %w", k, err))
		}
		d.buf[k] = v
	}
	if err := d.push(d.buf); err != nil {
		return Report{}, streamErrorf(opPushWords, err)
	}
	return d.Report(), nil
}

// PushFloats folds one already-decoded sample in (row-major for elementwise).
func (d *Driver) PushFloats(x []float64) (Report, error) {
	if err := d.push(x); err != nil {
		return Report{}, streamErrorf(opPushFloats, err)
	}
	return d.Report(), nil
}

func (d *Driver) push(x []float64) error {
	var err error
	if d.cov != nil {
		err = d.cov.Push(x)
	} else {
		err = d.elem.Push(x)
	}
	if err != nil {
		return err
	}
	d.last = d.query()
	d.logger.Debug("sample folded", zap.Int("count", d.last.Count))
	return nil
}

// Step reads and folds the next sample from the source. ok=false means the
// source is exhausted; the returned Report is then the final one, unchanged
// by further calls.
//
// Errors:
//   - ErrNoSource; any PushWords error, annotated with the sample index.
func (d *Driver) Step() (r Report, ok bool, err error) {
	if d.src == nil {
		return Report{}, false, streamErrorf(opStep, ErrNoSource)
	}
	if d.exhausted {
		return d.Report(), false, nil
	}
	words, ok := d.src.Next()
	if !ok {
		d.exhausted = true
		d.logger.Info("stream exhausted",
			zap.Int("samples", d.consumed),
			zap.Int("count", d.last.Count),
			zap.Stringer("codec", d.codec),
		)
		return d.Report(), false, nil
	}
	idx := d.consumed
	d.consumed++
	r, err = d.PushWords(words)
	if err != nil {
		return Report{}, false, streamErrorf(opStep, fmt.Errorf("sample %d: %w", idx, err))
	}
	return r, true, nil
}

// Run steps until the source is exhausted, an error occurs or ctx is done.
// ctx is checked between samples.
func (d *Driver) Run(ctx context.Context) (Report, error) {
	for {
		if err := ctx.Err(); err != nil {
			return d.Report(), err
		}
		r, ok, err := d.Step()
		if err != nil {
			return r, err
		}
		if !ok {
			return r, nil
		}
	}
}

// Report returns a copy of the latest statistics. It never mutates the driver.
func (d *Driver) Report() Report { return d.last.clone() }

// Count is the number of samples folded in.
func (d *Driver) Count() int { return d.last.Count }

// Exhausted reports whether the source has been drained.
func (d *Driver) Exhausted() bool { return d.exhausted }

// Encode re-encodes the latest report with the driver's codec.
//
// Errors:
//   - fixedpoint.ErrOverflow under the reject policy for any value out of range.
func (d *Driver) Encode() (Encoded, error) {
	enc, err := d.last.encode(d.codec)
	if err != nil {
		return Encoded{}, streamErrorf(opEncode, err)
	}
	return enc, nil
}

// Dump is the text form of Encode.
func (d *Driver) Dump() (string, error) {
	enc, err := d.Encode()
	if err != nil {
		return "", err
	}
	return enc.String(), nil
}

// Digest is the xxhash64 of Dump: equal digests mean equal traces.
func (d *Driver) Digest() (uint64, error) {
	dump, err := d.Dump()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64String(dump), nil
}

// CompareTrace compares the encoded report with a reference dump digit for
// digit.
//
// Errors:
//   - ErrMalformedTrace when ref cannot be parsed.
//   - ErrTraceMismatch, one per differing position, combined.
func (d *Driver) CompareTrace(ref string) error {
	want, err := ParseDump(ref)
	if err != nil {
		return streamErrorf(opCompare, err)
	}
	got, err := d.Encode()
	if err != nil {
		return streamErrorf(opCompare, err)
	}
	if err := got.Diff(want); err != nil {
		d.logger.Warn("trace mismatch", zap.Int("count", d.last.Count), zap.Error(err))
		return streamErrorf(opCompare, err)
	}
	return nil
}

// Reset clears the accumulator and the consumed counter. The source stays
// attached but is not rewound.
func (d *Driver) Reset() {
	if d.cov != nil {
		d.cov.Reset()
	} else {
		d.elem.Reset()
	}
	d.consumed = 0
	d.exhausted = false
	d.last = d.query()
}

func (d *Driver) query() Report {
	if d.cov != nil {
		return covReport(d.shape, d.cov.Query())
	}
	return elemReport(d.shape, d.elem.Query())
}
