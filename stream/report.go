// SPDX-License-Identifier: MIT

package stream

import (
	"bufio"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvstat/fixedpoint"
	"github.com/katalvlaran/lvstat/matrix"
	"github.com/katalvlaran/lvstat/welford"
)

// Section names used in encoded reports and dumps.
const (
	SectionMean       = "mean"
	SectionVariance   = "variance"
	SectionCovariance = "covariance"
	SectionTotal      = "total"
	SectionOverall    = "overall"
)

const sectionPrefix = "# "

// Report is the latest statistics of a Driver. Field use depends on Kind:
//
//   - covariance: Mean (len Rows), Covariance (Rows×Rows, unbiased),
//     Variance (its diagonal), TotalVariance (its trace);
//   - elementwise: Mean and Variance flattened row-major (biased),
//     OverallMean and OverallVariance over every element seen.
type Report struct {
	Kind  Kind
	Shape welford.Shape
	Count int

	Mean          []float64
	Variance      []float64
	Covariance    *matrix.Dense
	TotalVariance float64

	OverallMean     float64
	OverallVariance float64
}

func covReport(shape welford.Shape, st welford.CovStats) Report {
	return Report{
		Kind:          KindCovariance,
		Shape:         shape,
		Count:         st.Count,
		Mean:          st.Mean,
		Variance:      st.Variance,
		Covariance:    st.Covariance,
		TotalVariance: st.TotalVariance,
	}
}

func elemReport(shape welford.Shape, st welford.Stats) Report {
	return Report{
		Kind:            KindElementWise,
		Shape:           shape,
		Count:           st.Count,
		Mean:            st.Mean.Values(),
		Variance:        st.Variance.Values(),
		OverallMean:     st.OverallMean,
		OverallVariance: st.OverallVariance,
	}
}

// clone deep-copies the slices and matrix so callers cannot alias driver state.
func (r Report) clone() Report {
	out := r
	out.Mean = append([]float64(nil), r.Mean...)
	out.Variance = append([]float64(nil), r.Variance...)
	if r.Covariance != nil {
		out.Covariance = r.Covariance.CloneDense()
	}
	return out
}

// Section is one named block of hex words, one slice per line.
type Section struct {
	Name string
	Rows [][]string
}

// Encoded is a report rendered to fixed-point hex words.
type Encoded struct {
	Sections []Section
}

// encode renders r through c. Section order and layout:
//
//	covariance:  mean (1 row), covariance (d rows), variance (1 row), total (1 word)
//	elementwise: mean (r rows), variance (r rows), overall (mean, variance)
func (r Report) encode(c *fixedpoint.Codec) (Encoded, error) {
	var enc Encoded
	var errs error

	row := func(vals []float64) []string {
		words, err := c.EncodeAll(vals)
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		return c.FormatHexAll(words)
	}
	grid := func(vals []float64, cols int) [][]string {
		var out [][]string
		for i := 0; i+cols <= len(vals); i += cols {
			out = append(out, row(vals[i:i+cols]))
		}
		return out
	}

	switch r.Kind {
	case KindCovariance:
		enc.Sections = []Section{
			{Name: SectionMean, Rows: [][]string{row(r.Mean)}},
			{Name: SectionCovariance, Rows: grid(r.Covariance.Values(), r.Covariance.Cols())},
			{Name: SectionVariance, Rows: [][]string{row(r.Variance)}},
			{Name: SectionTotal, Rows: [][]string{row([]float64{r.TotalVariance})}},
		}
	default:
		enc.Sections = []Section{
			{Name: SectionMean, Rows: grid(r.Mean, r.Shape.Cols)},
			{Name: SectionVariance, Rows: grid(r.Variance, r.Shape.Cols)},
			{Name: SectionOverall, Rows: [][]string{row([]float64{r.OverallMean, r.OverallVariance})}},
		}
	}
	if errs != nil {
		return Encoded{}, errs
	}
	return enc, nil
}

// String renders the dump: a "# name" header per section, then one line of
// space-separated words per row.
func (e Encoded) String() string {
	var b strings.Builder
	for _, s := range e.Sections {
		b.WriteString(sectionPrefix)
		b.WriteString(s.Name)
		b.WriteByte('\n')
		for _, r := range s.Rows {
			b.WriteString(strings.Join(r, " "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseDump reads a dump produced by Encoded.String. Blank lines are ignored.
func ParseDump(text string) (Encoded, error) {
	var enc Encoded
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		switch {
		case s == "":
			continue
		case strings.HasPrefix(s, sectionPrefix):
			enc.Sections = append(enc.Sections, Section{Name: strings.TrimSpace(s[len(sectionPrefix):])})
		case len(enc.Sections) == 0:
			return Encoded{}, fmt.Errorf("%w: line %d: words before any section header", ErrMalformedTrace, line)
		default:
			last := &enc.Sections[len(enc.Sections)-1]
			last.Rows = append(last.Rows, strings.Fields(s))
		}
	}
	if err := sc.Err(); err != nil {
		return Encoded{}, fmt.Errorf("%w: %v", ErrMalformedTrace, err)
	}
	return enc, nil
}

// Diff compares e against want word by word. Every differing position,
// missing word or extra word becomes one ErrTraceMismatch; the result
// combines them all (nil when identical).
func (e Encoded) Diff(want Encoded) error {
	var errs error
	mismatch := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrTraceMismatch}, args...)...))
	}

	n := max(len(e.Sections), len(want.Sections))
	for si := 0; si < n; si++ {
		if si >= len(e.Sections) {
			mismatch("missing section %q", want.Sections[si].Name)
			continue
		}
		if si >= len(want.Sections) {
			mismatch("unexpected section %q", e.Sections[si].Name)
			continue
		}
		got, ref := e.Sections[si], want.Sections[si]
		if got.Name != ref.Name {
			mismatch("section %d is %q, want %q", si, got.Name, ref.Name)
			continue
		}
		rows := max(len(got.Rows), len(ref.Rows))
		for ri := 0; ri < rows; ri++ {
			var g, w []string
			if ri < len(got.Rows) {
				g = got.Rows[ri]
			}
			if ri < len(ref.Rows) {
				w = ref.Rows[ri]
			}
			cols := max(len(g), len(w))
			for ci := 0; ci < cols; ci++ {
				switch {
				case ci >= len(g):
					mismatch("%s[%d][%d] missing, want %s", got.Name, ri, ci, w[ci])
				case ci >= len(w):
					mismatch("%s[%d][%d] = %s not expected", got.Name, ri, ci, g[ci])
				case g[ci] != w[ci]:
					mismatch("%s[%d][%d] = %s, want %s", got.Name, ri, ci, g[ci], w[ci])
				}
			}
		}
	}
	return errs
}
