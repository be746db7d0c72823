// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abboot

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abstat/abstat/aberr"
)

// A Config configures a bootstrap computation.
//
// This should be initialized from DefaultConfig because it may be
// extended with other fields in the future. A nil *Config passed to
// any function in this package means DefaultConfig.
type Config struct {
	// Alpha is the significance level of confidence intervals.
	// The interval bounds are the Alpha/2 and 1-Alpha/2
	// percentiles of the bootstrap distribution. 0 < Alpha < 1.
	Alpha float64

	// Iterations is the number of resamples to draw. It is also
	// the length of every Distribution.
	Iterations int

	// Seed seeds the resampling. Results are a deterministic
	// function of the inputs and Seed. If Seed is 0, a seed is
	// derived from the sample values, so repeated calls with the
	// same data agree.
	Seed int64

	// Workers is the number of goroutines that draw resamples. 0
	// and 1 both mean the calling goroutine does all the work.
	// The result does not depend on Workers.
	Workers int

	// ResampleSize overrides the size of each resample. The
	// standard bootstrap, selected by 0, draws as many values as
	// the original sample holds, separately for each arm of a
	// two-sample comparison. A positive ResampleSize draws that
	// many values for every sample instead.
	ResampleSize int

	// Method selects how a distribution is reduced to an Interval.
	Method Method

	// Logger receives debug logs about each computation. If nil,
	// nothing is logged.
	Logger *zap.Logger
}

// DefaultConfig contains a reasonable set of defaults for Config.
var DefaultConfig = Config{
	Alpha:      0.05,
	Iterations: 10000,
	Method:     Percentile,
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return &DefaultConfig
	}
	return c
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// check validates the fields used to draw distributions.
func (c *Config) check(op string) error {
	switch {
	case c.Iterations <= 0:
		return aberr.Invalid(op, "iterations must be positive, got %d", c.Iterations)
	case c.Workers < 0:
		return aberr.Invalid(op, "workers must not be negative, got %d", c.Workers)
	case c.ResampleSize < 0:
		return aberr.Invalid(op, "resample size must not be negative, got %d", c.ResampleSize)
	}
	return nil
}

// checkInterval additionally validates the fields used to build
// intervals.
func (c *Config) checkInterval(op string) error {
	if err := c.check(op); err != nil {
		return err
	}
	if !(c.Alpha > 0 && c.Alpha < 1) {
		return aberr.Invalid(op, "alpha must be in (0, 1), got %v", c.Alpha)
	}
	switch c.Method {
	case Percentile, Pivotal:
	default:
		return aberr.Invalid(op, "unknown interval method %d", int(c.Method))
	}
	return nil
}

// A Method is a way of turning a bootstrap distribution into a
// confidence interval.
type Method int

const (
	// Percentile uses the Alpha/2 and 1-Alpha/2 percentiles of
	// the distribution as the interval bounds.
	Percentile Method = iota

	// Pivotal reflects the percentiles around the point
	// estimate: the bounds are 2θ - q(1-Alpha/2) and
	// 2θ - q(Alpha/2). It corrects for bias in the bootstrap
	// distribution but the bounds need not bracket θ.
	Pivotal
)

func (m Method) String() string {
	switch m {
	case Percentile:
		return "percentile"
	case Pivotal:
		return "pivotal"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "percentile", "":
		return Percentile, nil
	case "pivotal":
		return Pivotal, nil
	}
	return 0, aberr.Invalid("abboot.ParseMethod", "unknown method %q", s)
}
