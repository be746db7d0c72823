// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestZProportions(t *testing.T) {
	const z = 2.1908902300206647
	r, err := ZProportions(45, 100, 30, 100, TwoSided)
	checkResult(t, r, err, z, 0.02845973691631065)
	r, err = ZProportions(45, 100, 30, 100, Larger)
	checkResult(t, r, err, z, 0.014229868458155326)
	r, err = ZProportions(45, 100, 30, 100, Smaller)
	checkResult(t, r, err, z, 0.9857701315418447)
	r, err = ZProportions(30, 100, 45, 100, TwoSided)
	checkResult(t, r, err, -z, 0.02845973691631065)

	_, err = ZProportions(0, 10, 0, 20, TwoSided)
	checkComputation(t, "no successes", err)
	_, err = ZProportions(11, 10, 0, 20, TwoSided)
	checkInvalid(t, "too many successes", err)
	_, err = ZProportions(1, 0, 0, 20, TwoSided)
	checkInvalid(t, "no trials", err)
	_, err = ZProportions(1, 10, 2, 20, Alternative(-1))
	checkInvalid(t, "bad alternative", err)
}

func TestChiSquared(t *testing.T) {
	table := [][]float64{{45, 55}, {30, 70}}
	r, err := ChiSquared(table, false)
	checkResult(t, r.Result, err, 4.8, 0.02845973691631057)
	if r.DoF != 1 || r.N1 != 200 {
		t.Errorf("got dof %v n %d, want 1 and 200", r.DoF, r.N1)
	}
	want := [][]float64{{37.5, 62.5}, {37.5, 62.5}}
	if diff := cmp.Diff(want, r.Expected, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("expected frequencies (-want +got):\n%s", diff)
	}

	r, err = ChiSquared(table, true)
	checkResult(t, r.Result, err, 4.181333333333333, 0.0408715340890062)

	// The same table from counts of successes and trials.
	r, err = ChiSquared2x2(45, 100, 30, 100, true)
	checkResult(t, r.Result, err, 4.181333333333333, 0.0408715340890062)
	if r.N1 != 100 || r.N2 != 100 {
		t.Errorf("got n %d+%d, want 100+100", r.N1, r.N2)
	}

	// Yates' correction only applies to one degree of freedom.
	wide := [][]float64{{10, 20, 30}, {20, 20, 20}}
	for _, yates := range []bool{false, true} {
		r, err = ChiSquared(wide, yates)
		checkResult(t, r.Result, err, 5.333333333333334, 0.06948345122280151)
		if r.DoF != 2 {
			t.Errorf("got dof %v, want 2", r.DoF)
		}
	}

	// Small expected frequencies produce a warning.
	r, err = ChiSquared([][]float64{{3, 1}, {1, 3}}, false)
	checkResult(t, r.Result, err, 2, 0.15729920705028502,
		"expected frequency below 5; consider Fisher's exact test")

	// Zero degrees of freedom.
	r, err = ChiSquared([][]float64{{3, 4, 5}}, false)
	checkResult(t, r.Result, err, 0, 1)

	_, err = ChiSquared(nil, false)
	checkInvalid(t, "empty", err)
	_, err = ChiSquared([][]float64{{1, 2}, {3}}, false)
	checkInvalid(t, "ragged", err)
	_, err = ChiSquared([][]float64{{1, -2}, {3, 4}}, false)
	checkInvalid(t, "negative", err)
	_, err = ChiSquared([][]float64{{0, 2}, {0, 4}}, false)
	checkComputation(t, "zero column", err)
	_, err = ChiSquared2x2(5, 4, 1, 2, false)
	checkInvalid(t, "bad counts", err)
}

func TestFisherExact(t *testing.T) {
	// Fisher's lady tasting tea.
	r, err := FisherExact([2][2]int{{3, 1}, {1, 3}})
	checkResult(t, r, err, 9, 0.4857142857142857)

	r, err = FisherExact([2][2]int{{8, 2}, {1, 5}})
	checkResult(t, r, err, 20, 0.03496503496503496)

	r, err = FisherExact2x2(45, 100, 30, 100)
	checkResult(t, r, err, 45.0*70/(55*30), 0.040534006514982616)

	r, err = FisherExact([2][2]int{{3, 0}, {1, 3}})
	if err != nil || !math.IsInf(r.Statistic, 1) {
		t.Errorf("got %v, %v, want infinite odds ratio", r.Statistic, err)
	}

	r, err = FisherExact([2][2]int{{0, 0}, {1, 3}})
	if err != nil || !math.IsNaN(r.Statistic) || r.P != 1 {
		t.Errorf("got %v p %v, %v, want NaN and p=1", r.Statistic, r.P, err)
	}

	_, err = FisherExact([2][2]int{{-1, 0}, {1, 3}})
	checkInvalid(t, "negative", err)
	_, err = FisherExact2x2(1, 10, 21, 20)
	checkInvalid(t, "bad counts", err)
}
