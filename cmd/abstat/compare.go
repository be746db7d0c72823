// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abstat/abstat/abboot"
	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/internal/texttab"
)

type compareFlags struct {
	stat        string
	compare     string
	binomial    bool
	alternative string
}

func (a *app) compareCommand() *cobra.Command {
	var f compareFlags
	cmd := &cobra.Command{
		Use:   "compare TREATMENT CONTROL",
		Short: "Compare the two arms of an experiment",
		Long: `Compare estimates the difference between the samples in TREATMENT
and CONTROL by bootstrap and tests it for significance.

Continuous data is tested with Student's t-test and the Mann-Whitney
U-test. With -binomial, the data must be 0/1 outcomes and is tested
with a two-proportion z-test, a chi-squared test and Fisher's exact
test.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd.Context(), args[0], args[1], f)
		},
	}
	cmd.Flags().StringVar(&f.stat, "stat", "mean", "statistic: mean, sum, median or stddev")
	cmd.Flags().StringVar(&f.compare, "compare", "difference", "difference, ratio, percent-change or percent-difference")
	cmd.Flags().BoolVar(&f.binomial, "binomial", false, "treat the data as 0/1 outcomes")
	cmd.Flags().StringVar(&f.alternative, "alternative", "two-sided", "alternative hypothesis: two-sided, smaller or larger")
	return cmd
}

func (a *app) runCompare(ctx context.Context, treatmentPath, controlPath string, f compareFlags) error {
	treatment, err := readFile(treatmentPath)
	if err != nil {
		return err
	}
	control, err := readFile(controlPath)
	if err != nil {
		return err
	}
	cmp, err := abboot.ParseCompare(f.compare)
	if err != nil {
		return err
	}
	alt, err := abmath.ParseAlternative(f.alternative)
	if err != nil {
		return err
	}
	cfg, err := a.bootConfig()
	if err != nil {
		return err
	}
	a.log.Debug("comparing",
		zap.String("treatment", treatmentPath),
		zap.String("control", controlPath),
		zap.String("compare", cmp.Label()),
		zap.Bool("binomial", f.binomial))

	stat := abboot.Rate
	if !f.binomial {
		if stat, err = abboot.ParseStatistic(f.stat); err != nil {
			return err
		}
	}
	ts, cs := abboot.NewSample(treatment...), abboot.NewSample(control...)
	var iv abboot.Interval
	if f.binomial {
		iv, err = abboot.TwoSampleBinomialInterval(ctx, ts, cs, cmp, cfg)
	} else {
		iv, err = abboot.TwoSampleInterval(ctx, ts, cs, stat, cmp, cfg)
	}
	if err != nil {
		return err
	}

	var tab texttab.Table
	tab.Row().Cell("treatment").Cellf("n=%d", len(treatment)).Cellf("%s=%.4g", stat.Label(), stat.Compute(treatment, nil))
	tab.Row().Cell("control").Cellf("n=%d", len(control)).Cellf("%s=%.4g", stat.Label(), stat.Compute(control, nil))
	tab.Row().Cell(cmp.Label()).Cell(iv.String())
	tab.Rule()

	var results []testResult
	if f.binomial {
		results = proportionTests(count(treatment), len(treatment), count(control), len(control), alt, true)
	} else {
		results = locationTests(treatment, control, alt)
	}
	return writeTests(a.stdout, &tab, results, a.settings.Alpha)
}

// A testResult is the outcome of one significance test.
type testResult struct {
	name  string
	label string // name of the test statistic
	res   abmath.Result
	err   error
}

// locationTests runs the tests of a shift in location. The t-test is
// always two-sided.
func locationTests(x1, x2 []float64, alt abmath.Alternative) []testResult {
	var out []testResult
	r, err := abmath.TTest(x1, x2)
	out = append(out, testResult{"t-test", "t", r, err})
	r, err = abmath.MannWhitney(x1, x2, alt)
	out = append(out, testResult{"mann-whitney", "U", r, err})
	return out
}

// proportionTests runs the tests of a difference between two
// conversion rates. Only the z-test honors alt.
func proportionTests(s1, n1, s2, n2 int, alt abmath.Alternative, yates bool) []testResult {
	var out []testResult
	r, err := abmath.ZProportions(s1, n1, s2, n2, alt)
	out = append(out, testResult{"z-test", "z", r, err})
	chi, err := abmath.ChiSquared2x2(s1, n1, s2, n2, yates)
	out = append(out, testResult{"chi-squared", "χ²", chi.Result, err})
	r, err = abmath.FisherExact2x2(s1, n1, s2, n2)
	out = append(out, testResult{"fisher", "odds", r, err})
	return out
}

// writeTests appends results to tab, writes it to w, and then writes
// any warnings.
func writeTests(w io.Writer, tab *texttab.Table, results []testResult, alpha float64) error {
	var notes []string
	for _, t := range results {
		tab.Row().Cell(t.name)
		if t.err != nil {
			tab.Cell("error: " + t.err.Error())
			continue
		}
		verdict := "~"
		if t.res.Significant(alpha) {
			verdict = "significant"
		}
		tab.Cellf("%s=%.4g", t.label, t.res.Statistic).Cell(t.res.String()).Cell(verdict)
		for _, warn := range t.res.Warnings {
			notes = append(notes, fmt.Sprintf("%s: %v", t.name, warn))
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	for _, n := range notes {
		if _, err := fmt.Fprintln(w, "warning:", n); err != nil {
			return err
		}
	}
	return nil
}

// count returns the number of non-zero values in xs.
func count(xs []float64) int {
	n := 0
	for _, x := range xs {
		if x != 0 {
			n++
		}
	}
	return n
}
