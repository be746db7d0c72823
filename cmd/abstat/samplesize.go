// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abstat/abstat/abpower"
)

func (a *app) sampleSizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samplesize",
		Short: "Number of users per arm an experiment needs",
	}
	def := abpower.DefaultOptions
	cmd.PersistentFlags().Float64Var(&a.flags.Power, "power", def.Power, "probability of detecting a real effect")
	cmd.PersistentFlags().Float64Var(&a.flags.Significance, "significance", def.Significance, "false positive rate of the test")

	cmd.AddCommand(&cobra.Command{
		Use:   "binomial P0 P1",
		Short: "Sample size to tell conversion rate P0 from P1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloats(args)
			if err != nil {
				return err
			}
			n, err := abpower.Binomial(x[0], x[1], a.powerOptions())
			if err != nil {
				return err
			}
			return a.printSampleSize(n)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "continuous MU1 MU2 SD",
		Short: "Sample size to tell mean MU1 from MU2 at standard deviation SD",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloats(args)
			if err != nil {
				return err
			}
			n, err := abpower.Continuous(x[0], x[1], x[2], a.powerOptions())
			if err != nil {
				return err
			}
			return a.printSampleSize(n)
		},
	})
	return cmd
}

func (a *app) printSampleSize(n int) error {
	_, err := fmt.Fprintf(a.stdout, "%d per arm (power %g, significance %g)\n", n, a.settings.Power, a.settings.Significance)
	return err
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Errorf("bad number %q", arg)
		}
		xs[i] = x
	}
	return xs, nil
}
