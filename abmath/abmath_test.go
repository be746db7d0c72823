// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"fmt"
	"math"
	"testing"

	"github.com/abstat/abstat/aberr"
)

func aeq(x, y float64) bool {
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	// Check that x and y are equal to 8 digits.
	const factor = 1 - 1e-7
	return x*factor <= y && y*factor <= x
}

// near checks agreement to the precision of the reference values,
// which come from independent numerical integration.
func near(x, y float64) bool {
	return math.Abs(x-y) <= 1e-6*math.Max(1, math.Abs(y))
}

func checkResult(t *testing.T, got Result, err error, wantStat, wantP float64, warnings ...string) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got.Statistic, wantStat) || !near(got.P, wantP) {
		t.Errorf("got statistic %v p %v, want %v p %v", got.Statistic, got.P, wantStat, wantP)
	}
	if len(got.Warnings) != len(warnings) {
		t.Errorf("got warnings %v, want %v", got.Warnings, warnings)
		return
	}
	for i, w := range warnings {
		if got.Warnings[i].Error() != w {
			t.Errorf("warning %d: got %q, want %q", i, got.Warnings[i], w)
		}
	}
}

func checkInvalid(t *testing.T, name string, err error) {
	t.Helper()
	if !aberr.IsInvalidInput(err) {
		t.Errorf("%s: got %v, want InvalidInputError", name, err)
	}
}

func checkComputation(t *testing.T, name string, err error) {
	t.Helper()
	if !aberr.IsComputation(err) {
		t.Errorf("%s: got %v, want ComputationError", name, err)
	}
}

func TestResultFormat(t *testing.T) {
	check := func(p float64, n1, n2 int, want string) {
		t.Helper()
		got := Result{P: p, N1: n1, N2: n2}.String()
		if got != want {
			t.Errorf("for %v,%v,%v, got %s, want %s", p, n1, n2, got, want)
		}
	}
	check(0.5, 1, 2, "p=0.500 n=1+2")
	check(0.5, 2, 2, "p=0.500 n=2")
	check(0.01234, 20, 0, "p=0.012 n=20")

	r := Result{P: 0.03}
	if !r.Significant(0.05) || r.Significant(0.01) {
		t.Errorf("Significant is wrong for p=%v", r.P)
	}
}

func TestParseAlternative(t *testing.T) {
	for _, a := range []Alternative{TwoSided, Smaller, Larger} {
		got, err := ParseAlternative(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlternative(%q) = %v, %v", a, got, err)
		}
	}
	_, err := ParseAlternative("both")
	checkInvalid(t, "unknown alternative", err)
	if got := fmt.Sprint(Alternative(5)); got != "Alternative(5)" {
		t.Errorf("got %s", got)
	}
}
