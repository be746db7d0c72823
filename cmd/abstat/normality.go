// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/internal/texttab"
)

func (a *app) normalityCommand() *cobra.Command {
	var transform bool
	cmd := &cobra.Command{
		Use:   "normality FILE",
		Short: "Test whether a sample is normally distributed",
		Long: `Normality runs the Shapiro-Wilk and Lilliefors tests of the null
hypothesis that the sample in FILE is drawn from a normal
distribution, and estimates the Box-Cox λ that makes positive data
most nearly normal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNormality(args[0], transform)
		},
	}
	cmd.Flags().BoolVar(&transform, "transform", false, "print the Box-Cox transformed sample")
	return cmd
}

func (a *app) runNormality(path string, transform bool) error {
	xs, err := readFile(path)
	if err != nil {
		return err
	}

	var results []testResult
	r, err := abmath.ShapiroWilk(xs)
	results = append(results, testResult{"shapiro-wilk", "W", r, err})
	r, err = abmath.Lilliefors(xs)
	results = append(results, testResult{"lilliefors", "D", r, err})

	var tab texttab.Table
	tab.Row().Cell("n").Cellf("%d", len(xs))
	tab.Rule()
	if err := writeTests(a.stdout, &tab, results, a.settings.Alpha); err != nil {
		return err
	}

	y, lambda, err := abmath.BoxCox(xs)
	if err != nil {
		_, err = fmt.Fprintf(a.stdout, "box-cox: %v\n", err)
		return err
	}
	if _, err := fmt.Fprintf(a.stdout, "box-cox λ=%.4g\n", lambda); err != nil {
		return err
	}
	if transform {
		for _, v := range y {
			if _, err := fmt.Fprintf(a.stdout, "%g\n", v); err != nil {
				return err
			}
		}
	}
	return nil
}
