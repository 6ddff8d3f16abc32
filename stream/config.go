// SPDX-License-Identifier: MIT

package stream

import (
	"bytes"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstat/fixedpoint"
	"github.com/katalvlaran/lvstat/lut"
)

// Kind selects the accumulator a Driver feeds.
type Kind string

const (
	// KindCovariance feeds a welford.CovarianceTracker with length-Rows vectors.
	KindCovariance Kind = "covariance"
	// KindElementWise feeds a welford.Tracker with Rows×Cols samples.
	KindElementWise Kind = "elementwise"
)

// Defaults applied by Validate to zero fields.
const (
	DefaultWidth    = 32
	DefaultFracBits = 16
	DefaultKind     = KindCovariance
)

// Config describes one stream. The zero value of every field except
// Rows means "use the default".
type Config struct {
	Width    int    `yaml:"width"`
	FracBits int    `yaml:"frac_bits"`
	Overflow string `yaml:"overflow"` // wrap | saturate | reject
	Rounding string `yaml:"rounding"` // half-away | truncate
	Kind     Kind   `yaml:"kind"`
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`

	// Reciprocal, when set, drives the mean update from a lookup table.
	Reciprocal *ReciprocalConfig `yaml:"reciprocal,omitempty"`
}

// ReciprocalConfig sizes the reciprocal lookup table.
type ReciprocalConfig struct {
	Size  int `yaml:"size"`
	Width int `yaml:"width"`
}

// ParseConfig decodes YAML into a Config and validates it. Unknown keys are
// rejected.
func ParseConfig(b []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("stream: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate fills defaults into zero fields and reports every problem at once.
// A zero FracBits becomes min(DefaultFracBits, Width), so "width: 16" alone
// selects an all-fraction 16-bit format.
func (c *Config) Validate() error {
	var errs error

	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.FracBits == 0 {
		c.FracBits = min(DefaultFracBits, c.Width)
	}
	if c.Kind == "" {
		c.Kind = DefaultKind
	}
	if c.Kind == KindCovariance && c.Cols == 0 {
		c.Cols = 1
	}

	if c.Width < 1 || c.Width > fixedpoint.MaxWidth {
		errs = multierr.Append(errs, fmt.Errorf("width must be in [1,%d], got %d", fixedpoint.MaxWidth, c.Width))
	}
	if c.FracBits < 1 || c.FracBits > c.Width {
		errs = multierr.Append(errs, fmt.Errorf("frac_bits must be in [1,width], got %d", c.FracBits))
	}
	if _, err := fixedpoint.ParseOverflow(c.Overflow); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := fixedpoint.ParseRounding(c.Rounding); err != nil {
		errs = multierr.Append(errs, err)
	}

	switch c.Kind {
	case KindCovariance:
		if c.Rows <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("rows must be > 0 for %s, got %d", c.Kind, c.Rows))
		}
		if c.Cols != 1 {
			errs = multierr.Append(errs, fmt.Errorf("cols must be 1 for %s, got %d", c.Kind, c.Cols))
		}
	case KindElementWise:
		if c.Rows <= 0 || c.Cols <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("rows and cols must be > 0 for %s, got %dx%d", c.Kind, c.Rows, c.Cols))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("kind must be %q or %q, got %q", KindCovariance, KindElementWise, c.Kind))
	}

	if r := c.Reciprocal; r != nil {
		if r.Size == 0 {
			r.Size = lut.DefaultSize
		}
		if r.Width == 0 {
			r.Width = lut.DefaultWidth
		}
		if r.Size < 2 {
			errs = multierr.Append(errs, fmt.Errorf("reciprocal.size must be >= 2, got %d", r.Size))
		}
		if r.Width < 1 || r.Width > fixedpoint.MaxWidth {
			errs = multierr.Append(errs, fmt.Errorf("reciprocal.width must be in [1,%d], got %d", fixedpoint.MaxWidth, r.Width))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

// codec builds the fixed-point codec the config describes. Call after Validate.
func (c Config) codec() (*fixedpoint.Codec, error) {
	ov, err := fixedpoint.ParseOverflow(c.Overflow)
	if err != nil {
		return nil, err
	}
	rd, err := fixedpoint.ParseRounding(c.Rounding)
	if err != nil {
		return nil, err
	}
	return fixedpoint.New(c.Width, c.FracBits, fixedpoint.WithOverflow(ov), fixedpoint.WithRounding(rd))
}
