// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/abstat/abstat/aberr"
)

// TTest performs a two-sided two-sample Student's t-test of the null
// hypothesis that x1 and x2 come from populations with equal means,
// assuming equal variances.
func TTest(x1, x2 []float64) (Result, error) {
	return tTest("abmath.TTest", x1, x2, stats.TwoSampleTTest)
}

// WelchTTest is like TTest but does not assume the populations have
// equal variances.
func WelchTTest(x1, x2 []float64) (Result, error) {
	return tTest("abmath.WelchTTest", x1, x2, stats.TwoSampleWelchTTest)
}

type tTestFunc func(x1, x2 stats.TTestSample, alt stats.LocationHypothesis) (*stats.TTestResult, error)

func tTest(op string, x1, x2 []float64, test tTestFunc) (Result, error) {
	if len(x1) == 0 || len(x2) == 0 {
		return Result{}, aberr.Invalid(op, "samples must not be empty (got %d and %d values)", len(x1), len(x2))
	}
	if len(x1)+len(x2) < 3 {
		return Result{}, aberr.Computation(op, stats.ErrSampleSize)
	}
	t, err := test(stats.Sample{Xs: x1}, stats.Sample{Xs: x2}, stats.LocationDiffers)
	if err != nil {
		return Result{}, aberr.Computation(op, err)
	}
	return Result{Statistic: t.T, P: t.P, DoF: t.DoF, N1: t.N1, N2: t.N2}, nil
}

// MannWhitney performs a Mann-Whitney U rank test of the null
// hypothesis that x1 and x2 come from the same population.
//
// The statistic is U for x1: the number of pairs in which the value
// from x1 is greater than the value from x2, counting ties as 1/2.
// Small samples use the exact U distribution; larger ones use a normal
// approximation with tie and continuity corrections.
func MannWhitney(x1, x2 []float64, alt Alternative) (Result, error) {
	const op = "abmath.MannWhitney"
	if err := alt.check(op); err != nil {
		return Result{}, err
	}
	if len(x1) == 0 || len(x2) == 0 {
		return Result{}, aberr.Invalid(op, "samples must not be empty (got %d and %d values)", len(x1), len(x2))
	}
	u, err := stats.MannWhitneyUTest(x1, x2, alt.location())
	if err != nil {
		return Result{}, aberr.Computation(op, err)
	}
	return Result{Statistic: u.U, P: u.P, N1: u.N1, N2: u.N2}, nil
}
