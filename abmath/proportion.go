// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"

	"github.com/abstat/abstat/aberr"
)

// ZProportions performs a two-proportion z-test of the null hypothesis
// that successes1/trials1 and successes2/trials2 estimate the same
// proportion. The variance is estimated from the pooled proportion.
//
// Smaller tests p1 < p2 and Larger tests p1 > p2.
func ZProportions(successes1, trials1, successes2, trials2 int, alt Alternative) (Result, error) {
	const op = "abmath.ZProportions"
	if err := alt.check(op); err != nil {
		return Result{}, err
	}
	if err := checkCounts(op, successes1, trials1, successes2, trials2); err != nil {
		return Result{}, err
	}
	n1, n2 := float64(trials1), float64(trials2)
	p1, p2 := float64(successes1)/n1, float64(successes2)/n2
	pooled := float64(successes1+successes2) / (n1 + n2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))
	if se == 0 {
		return Result{}, aberr.Computation(op, errors.New("pooled proportion is 0 or 1"))
	}
	z := (p1 - p2) / se
	return Result{Statistic: z, P: alt.pValue(z), N1: trials1, N2: trials2}, nil
}

func checkCounts(op string, successes1, trials1, successes2, trials2 int) error {
	if trials1 <= 0 || trials2 <= 0 {
		return aberr.Invalid(op, "trials must be positive, got %d and %d", trials1, trials2)
	}
	if successes1 < 0 || successes1 > trials1 || successes2 < 0 || successes2 > trials2 {
		return aberr.Invalid(op, "successes must be in [0, trials], got %d/%d and %d/%d", successes1, trials1, successes2, trials2)
	}
	return nil
}

// A ChiSquaredResult is the result of a chi-squared test of
// independence.
type ChiSquaredResult struct {
	Result

	// Expected holds the expected frequencies of the table under
	// independence.
	Expected [][]float64
}

// ChiSquared performs Pearson's chi-squared test of independence of
// the rows and columns of the contingency table observed.
//
// If yates is set and the table has one degree of freedom, each cell
// is moved up to 0.5 towards its expected frequency first (Yates'
// continuity correction), which should be applied when frequencies are
// small. A table with zero degrees of freedom has statistic 0 and
// p-value 1.
func ChiSquared(observed [][]float64, yates bool) (ChiSquaredResult, error) {
	const op = "abmath.ChiSquared"
	if len(observed) == 0 || len(observed[0]) == 0 {
		return ChiSquaredResult{}, aberr.Invalid(op, "contingency table is empty")
	}
	rows, cols := len(observed), len(observed[0])
	rowSums := make([]float64, rows)
	colSums := make([]float64, cols)
	total := 0.0
	for i, row := range observed {
		if len(row) != cols {
			return ChiSquaredResult{}, aberr.Invalid(op, "row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return ChiSquaredResult{}, aberr.Invalid(op, "cell (%d, %d) is %v, want a non-negative count", i, j, v)
			}
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}

	expected := make([][]float64, rows)
	for i := range expected {
		expected[i] = make([]float64, cols)
		for j := range expected[i] {
			e := rowSums[i] * colSums[j] / total
			if !(e > 0) {
				return ChiSquaredResult{}, aberr.Computation(op, errors.New("table of expected frequencies has a zero element"))
			}
			expected[i][j] = e
		}
	}

	dof := (rows - 1) * (cols - 1)
	res := ChiSquaredResult{Result: Result{DoF: float64(dof), N1: int(math.Round(total))}, Expected: expected}
	if dof == 0 {
		res.P = 1
		return res, nil
	}

	chi2 := 0.0
	for i, row := range observed {
		for j, o := range row {
			d := o - expected[i][j]
			if yates && dof == 1 {
				d = math.Copysign(math.Max(math.Abs(d)-0.5, 0), d)
			}
			chi2 += d * d / expected[i][j]
		}
	}
	res.Statistic = chi2
	res.P = mathx.GammaIncComp(float64(dof)/2, chi2/2)
	for i := range expected {
		for j := range expected[i] {
			if expected[i][j] < 5 {
				res.Warnings = append(res.Warnings, errors.New("expected frequency below 5; consider Fisher's exact test"))
				return res, nil
			}
		}
	}
	return res, nil
}

// ChiSquared2x2 runs ChiSquared on the 2×2 table of successes and
// failures of two groups.
func ChiSquared2x2(successes1, trials1, successes2, trials2 int, yates bool) (ChiSquaredResult, error) {
	if err := checkCounts("abmath.ChiSquared2x2", successes1, trials1, successes2, trials2); err != nil {
		return ChiSquaredResult{}, err
	}
	res, err := ChiSquared(successFailure(successes1, trials1, successes2, trials2), yates)
	if err != nil {
		return res, err
	}
	res.N1, res.N2 = trials1, trials2
	return res, nil
}

func successFailure(successes1, trials1, successes2, trials2 int) [][]float64 {
	return [][]float64{
		{float64(successes1), float64(trials1 - successes1)},
		{float64(successes2), float64(trials2 - successes2)},
	}
}

// FisherExact performs Fisher's exact test of independence on the 2×2
// table {{a, b}, {c, d}}.
//
// The statistic is the sample odds ratio ad/bc, which is +Inf if bc is
// zero. The two-sided p-value sums the probabilities of all tables
// with the same margins that are no more likely than the observed one.
// If any row or column of the table is zero, the odds ratio is NaN and
// the p-value is 1.
func FisherExact(table [2][2]int) (Result, error) {
	const op = "abmath.FisherExact"
	a, b, c, d := table[0][0], table[0][1], table[1][0], table[1][1]
	if a < 0 || b < 0 || c < 0 || d < 0 {
		return Result{}, aberr.Invalid(op, "cells must be non-negative, got %v", table)
	}
	n1, n2 := a+b, c+d
	res := Result{N1: n1, N2: n2}
	if n1 == 0 || n2 == 0 || a+c == 0 || b+d == 0 {
		res.Statistic, res.P = math.NaN(), 1
		return res, nil
	}
	if b > 0 && c > 0 {
		res.Statistic = float64(a) * float64(d) / (float64(b) * float64(c))
	} else {
		res.Statistic = math.Inf(1)
	}

	// a is hypergeometric: a+c draws from n1+n2 items, n1 of
	// which are successes.
	dist := stats.HypergeometicDist{N: n1 + n2, K: n1, Draws: a + c}
	lo, hi := dist.Bounds()
	pObs := dist.PMF(float64(a))
	// Tolerate rounding when comparing table probabilities.
	limit := pObs * (1 + 1e-7)
	p := 0.0
	for k := lo; k <= hi; k++ {
		if pk := dist.PMF(k); pk <= limit {
			p += pk
		}
	}
	res.P = math.Min(p, 1)
	return res, nil
}

// FisherExact2x2 runs FisherExact on the table of successes and
// failures of two groups.
func FisherExact2x2(successes1, trials1, successes2, trials2 int) (Result, error) {
	if err := checkCounts("abmath.FisherExact2x2", successes1, trials1, successes2, trials2); err != nil {
		return Result{}, err
	}
	return FisherExact([2][2]int{
		{successes1, trials1 - successes1},
		{successes2, trials2 - successes2},
	})
}
