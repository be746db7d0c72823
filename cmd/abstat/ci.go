// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abstat/abstat/abboot"
	"github.com/abstat/abstat/internal/texttab"
)

type ciFlags struct {
	stat         string
	binomial     bool
	denominators string
}

func (a *app) ciCommand() *cobra.Command {
	var f ciFlags
	cmd := &cobra.Command{
		Use:   "ci FILE",
		Short: "Bootstrap confidence interval of a statistic",
		Long: `Ci prints a statistic of the sample in FILE and its bootstrap
confidence interval at level 1-alpha.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCI(cmd.Context(), args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.stat, "stat", "mean", "statistic: mean, sum, rate, median or stddev")
	cmd.Flags().BoolVar(&f.binomial, "binomial", false, "treat the data as 0/1 outcomes and estimate their rate")
	cmd.Flags().StringVar(&f.denominators, "denominators", "", "read per-value denominators for the rate statistic from `file`")
	return cmd
}

func (a *app) runCI(ctx context.Context, path string, f ciFlags) error {
	s, err := readSample(path, f.denominators)
	if err != nil {
		return err
	}
	cfg, err := a.bootConfig()
	if err != nil {
		return err
	}
	a.log.Debug("computing interval", zap.String("file", path), zap.Int("n", len(s.Values)))

	var (
		iv    abboot.Interval
		label string
	)
	if f.binomial {
		label = abboot.Rate.Label()
		iv, err = abboot.BinomialInterval(ctx, s, cfg)
	} else {
		var stat abboot.Statistic
		stat, err = abboot.ParseStatistic(f.stat)
		if err != nil {
			return err
		}
		label = stat.Label()
		iv, err = abboot.ConfidenceInterval(ctx, s, stat, cfg)
	}
	if err != nil {
		return err
	}

	var tab texttab.Table
	tab.Row().Cell("n").Cellf("%d", len(s.Values))
	tab.Row().Cell(label).Cell(iv.String()).Cell(iv.PctRangeString())
	tab.Row().Cell("method").Cell(iv.Method.String())
	return tab.Format(a.stdout)
}

// readSample reads a sample from path and, if denominators is not
// empty, its denominators from that file.
func readSample(path, denominators string) (abboot.Sample, error) {
	values, err := readFile(path)
	if err != nil {
		return abboot.Sample{}, err
	}
	s := abboot.NewSample(values...)
	if denominators == "" {
		return s, nil
	}
	if s.Denominators, err = readFile(denominators); err != nil {
		return abboot.Sample{}, err
	}
	if len(s.Denominators) != len(s.Values) {
		return abboot.Sample{}, errors.Errorf("%s has %d numbers but %s has %d", path, len(s.Values), denominators, len(s.Denominators))
	}
	return s, nil
}
