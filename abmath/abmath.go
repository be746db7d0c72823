// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abmath provides the closed-form statistical tests used to
// analyze A/B experiments: location tests for continuous metrics,
// proportion and contingency tests for binary metrics, normality
// tests, and the Box-Cox transform.
//
// Each test returns a Result holding the test statistic and p-value.
// Malformed arguments are reported as aberr.InvalidInputError and
// numerical failures, such as a t-test on constant samples, as
// aberr.ComputationError.
package abmath

import (
	"fmt"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/abstat/abstat/aberr"
)

// A Result is the outcome of a hypothesis test.
type Result struct {
	// Statistic is the value of the test statistic. Its meaning
	// depends on the test: t, z, χ², U, W, the Kolmogorov-Smirnov
	// distance, or Fisher's odds ratio.
	Statistic float64

	// P is the p-value of the test's null hypothesis.
	P float64

	// DoF is the degrees of freedom of the statistic's reference
	// distribution, or 0 if it has none.
	DoF float64

	// N1 and N2 are the sizes of the samples. For a one-sample
	// test, N2 is 0.
	N1, N2 int

	// Warnings is a list of warnings about this result that
	// should be reported to the user.
	Warnings []error
}

// Significant reports whether the test rejects its null hypothesis at
// level alpha.
func (r Result) Significant(alpha float64) bool {
	return r.P < alpha
}

// String summarizes the result. The general form of this string is
// "p=0.PPP n=N1+N2" but can be shortened.
func (r Result) String() string {
	s := fmt.Sprintf("p=%0.3f ", r.P)
	if r.N2 == 0 {
		return s + fmt.Sprintf("n=%d", r.N1)
	}
	if r.N1 == r.N2 {
		// Slightly shorter form for a common case.
		return s + fmt.Sprintf("n=%d", r.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", r.N1, r.N2)
}

// An Alternative is the alternative hypothesis of a two-sample test.
// The zero value is TwoSided.
type Alternative int

const (
	// TwoSided tests whether the first sample differs from the
	// second.
	TwoSided Alternative = iota

	// Smaller tests whether the first sample is smaller than the
	// second.
	Smaller

	// Larger tests whether the first sample is larger than the
	// second.
	Larger
)

func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two-sided"
	case Smaller:
		return "smaller"
	case Larger:
		return "larger"
	}
	return fmt.Sprintf("Alternative(%d)", int(a))
}

// ParseAlternative returns the Alternative named s.
func ParseAlternative(s string) (Alternative, error) {
	for _, a := range []Alternative{TwoSided, Smaller, Larger} {
		if a.String() == strings.ToLower(s) {
			return a, nil
		}
	}
	return 0, aberr.Invalid("abmath.ParseAlternative", "unknown alternative %q", s)
}

func (a Alternative) check(op string) error {
	switch a {
	case TwoSided, Smaller, Larger:
		return nil
	}
	return aberr.Invalid(op, "unknown alternative %d", int(a))
}

func (a Alternative) location() stats.LocationHypothesis {
	switch a {
	case Smaller:
		return stats.LocationLess
	case Larger:
		return stats.LocationGreater
	}
	return stats.LocationDiffers
}

// pValue returns the p-value of a statistic z that is standard normal
// under the null hypothesis.
func (a Alternative) pValue(z float64) float64 {
	switch a {
	case Smaller:
		return stats.StdNormal.CDF(z)
	case Larger:
		return 1 - stats.StdNormal.CDF(z)
	}
	if z > 0 {
		z = -z
	}
	return 2 * stats.StdNormal.CDF(z)
}
