// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/internal/texttab"
)

func (a *app) proportionsCommand() *cobra.Command {
	var (
		alternative string
		yates       bool
	)
	cmd := &cobra.Command{
		Use:   "proportions S1 N1 S2 N2",
		Short: "Test two conversion rates for a difference",
		Long: `Proportions tests whether S1 successes out of N1 trials and S2
successes out of N2 trials come from the same conversion rate.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := parseCounts(args)
			if err != nil {
				return err
			}
			alt, err := abmath.ParseAlternative(alternative)
			if err != nil {
				return err
			}
			return a.runProportions(counts, alt, yates)
		},
	}
	cmd.Flags().StringVar(&alternative, "alternative", "two-sided", "alternative hypothesis of the z-test: two-sided, smaller or larger")
	cmd.Flags().BoolVar(&yates, "yates", true, "apply Yates' continuity correction to the chi-squared test")
	return cmd
}

func (a *app) runProportions(c [4]int, alt abmath.Alternative, yates bool) error {
	var tab texttab.Table
	for i, name := range []string{"first", "second"} {
		s, n := c[2*i], c[2*i+1]
		tab.Row().Cell(name).Cellf("%d/%d", s, n)
		if n > 0 {
			tab.Cellf("%.4g%%", 100*float64(s)/float64(n))
		}
	}
	tab.Rule()
	return writeTests(a.stdout, &tab, proportionTests(c[0], c[1], c[2], c[3], alt, yates), a.settings.Alpha)
}

func parseCounts(args []string) ([4]int, error) {
	var c [4]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return c, errors.Errorf("bad count %q", arg)
		}
		c[i] = n
	}
	return c, nil
}
