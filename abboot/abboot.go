// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abboot estimates the sampling distribution of experiment
// metrics by bootstrap resampling.
//
// A bootstrap draws many resamples, with replacement, from the
// observed data and computes a Statistic on each. The resulting
// Distribution approximates the sampling distribution of the
// statistic and is reduced to an Interval by taking its percentiles.
// Two-sample functions resample a treatment and a control arm
// independently and combine their statistics with a Compare.
//
// Every computation is deterministic given its inputs and
// Config.Seed, regardless of Config.Workers.
package abboot

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abstat/abstat/aberr"
)

// A Distribution is the sequence of statistics computed on successive
// resamples, in draw order. Its length is Config.Iterations.
type Distribution []float64

// Mean returns the mean of the distribution.
func (d Distribution) Mean() float64 {
	return stats.Mean(d)
}

// StdDev returns the standard deviation of the distribution, which
// estimates the standard error of the statistic.
func (d Distribution) StdDev() float64 {
	return stats.StdDev(d)
}

// Percentile returns the p'th quantile of d, 0 <= p <= 1, using
// linear interpolation between order statistics (see percentile).
func (d Distribution) Percentile(p float64) float64 {
	sorted := append([]float64(nil), d...)
	sort.Float64s(sorted)
	return percentile(sorted, p)
}

// Bootstrap returns the bootstrap distribution of stat over s.
func Bootstrap(ctx context.Context, s Sample, stat Statistic, cfg *Config) (Distribution, error) {
	const op = "abboot.Bootstrap"
	cfg = cfg.orDefault()
	if err := checkOne(op, s, stat, cfg.check(op)); err != nil {
		return nil, err
	}
	return cfg.oneSample(ctx, op, s, stat)
}

// ConfidenceInterval returns stat(s) and its bootstrap confidence
// interval at level 1-cfg.Alpha.
func ConfidenceInterval(ctx context.Context, s Sample, stat Statistic, cfg *Config) (Interval, error) {
	const op = "abboot.ConfidenceInterval"
	cfg = cfg.orDefault()
	if err := checkOne(op, s, stat, cfg.checkInterval(op)); err != nil {
		return Interval{}, err
	}
	d, err := cfg.oneSample(ctx, op, s, stat)
	if err != nil {
		return Interval{}, err
	}
	return cfg.interval(d, stat.Compute(s.Values, s.Denominators)), nil
}

// TwoSampleBootstrap returns the bootstrap distribution of
// cmp(stat(treatment), stat(control)). Each round resamples treatment
// and control independently.
func TwoSampleBootstrap(ctx context.Context, treatment, control Sample, stat Statistic, cmp Compare, cfg *Config) (Distribution, error) {
	const op = "abboot.TwoSampleBootstrap"
	cfg = cfg.orDefault()
	if err := checkTwo(op, treatment, control, stat, cmp, cfg.check(op)); err != nil {
		return nil, err
	}
	return cfg.twoSample(ctx, op, treatment, control, stat, cmp)
}

// TwoSampleInterval returns cmp(stat(treatment), stat(control)) and its
// bootstrap confidence interval at level 1-cfg.Alpha.
func TwoSampleInterval(ctx context.Context, treatment, control Sample, stat Statistic, cmp Compare, cfg *Config) (Interval, error) {
	const op = "abboot.TwoSampleInterval"
	cfg = cfg.orDefault()
	if err := checkTwo(op, treatment, control, stat, cmp, cfg.checkInterval(op)); err != nil {
		return Interval{}, err
	}
	d, err := cfg.twoSample(ctx, op, treatment, control, stat, cmp)
	if err != nil {
		return Interval{}, err
	}
	center := cmp.Combine(
		stat.Compute(treatment.Values, treatment.Denominators),
		stat.Compute(control.Values, control.Denominators))
	return cfg.interval(d, center), nil
}

// BinomialBootstrap is Bootstrap for a 0/1 metric with the
// statistic fixed to Rate.
func BinomialBootstrap(ctx context.Context, s Sample, cfg *Config) (Distribution, error) {
	const op = "abboot.BinomialBootstrap"
	if err := s.checkBinary(op, "binomial"); err != nil {
		return nil, err
	}
	return Bootstrap(ctx, s, Rate, cfg)
}

// BinomialInterval is ConfidenceInterval for a 0/1 metric with the
// statistic fixed to Rate.
func BinomialInterval(ctx context.Context, s Sample, cfg *Config) (Interval, error) {
	const op = "abboot.BinomialInterval"
	if err := s.checkBinary(op, "binomial"); err != nil {
		return Interval{}, err
	}
	return ConfidenceInterval(ctx, s, Rate, cfg)
}

// TwoSampleBinomialBootstrap is TwoSampleBootstrap for a 0/1
// metric with the statistic fixed to Rate.
func TwoSampleBinomialBootstrap(ctx context.Context, treatment, control Sample, cmp Compare, cfg *Config) (Distribution, error) {
	const op = "abboot.TwoSampleBinomialBootstrap"
	if err := checkBinary2(op, treatment, control); err != nil {
		return nil, err
	}
	return TwoSampleBootstrap(ctx, treatment, control, Rate, cmp, cfg)
}

// TwoSampleBinomialInterval is TwoSampleInterval for a 0/1 metric with
// the statistic fixed to Rate.
func TwoSampleBinomialInterval(ctx context.Context, treatment, control Sample, cmp Compare, cfg *Config) (Interval, error) {
	const op = "abboot.TwoSampleBinomialInterval"
	if err := checkBinary2(op, treatment, control); err != nil {
		return Interval{}, err
	}
	return TwoSampleInterval(ctx, treatment, control, Rate, cmp, cfg)
}

func checkOne(op string, s Sample, stat Statistic, cfgErr error) error {
	if cfgErr != nil {
		return cfgErr
	}
	if stat == nil {
		return aberr.Invalid(op, "statistic is nil")
	}
	return s.check(op, "input")
}

func checkTwo(op string, treatment, control Sample, stat Statistic, cmp Compare, cfgErr error) error {
	if cfgErr != nil {
		return cfgErr
	}
	if stat == nil {
		return aberr.Invalid(op, "statistic is nil")
	}
	if cmp == nil {
		return aberr.Invalid(op, "compare function is nil")
	}
	if err := treatment.check(op, "treatment"); err != nil {
		return err
	}
	return control.check(op, "control")
}

func checkBinary2(op string, treatment, control Sample) error {
	if err := treatment.checkBinary(op, "treatment"); err != nil {
		return err
	}
	return control.checkBinary(op, "control")
}

func (c *Config) oneSample(ctx context.Context, op string, s Sample, stat Statistic) (Distribution, error) {
	seed := c.Seed
	if seed == 0 {
		seed = s.hash()
	}
	return c.run(ctx, op, seed, func() roundFunc {
		rs := newResampler(s, c.ResampleSize)
		return func(r *rand.Rand) float64 {
			return rs.draw(r, stat)
		}
	})
}

func (c *Config) twoSample(ctx context.Context, op string, treatment, control Sample, stat Statistic, cmp Compare) (Distribution, error) {
	seed := c.Seed
	if seed == 0 {
		seed = treatment.hash() * control.hash()
	}
	return c.run(ctx, op, seed, func() roundFunc {
		rt := newResampler(treatment, c.ResampleSize)
		rc := newResampler(control, c.ResampleSize)
		return func(r *rand.Rand) float64 {
			t := rt.draw(r, stat)
			return cmp.Combine(t, rc.draw(r, stat))
		}
	})
}

// A roundFunc computes the statistic of one fresh resample.
type roundFunc func(r *rand.Rand) float64

// chunkSize is the number of rounds drawn from one random source. It
// is fixed so the output does not depend on how chunks are spread
// over workers.
const chunkSize = 512

// run fills a Distribution of c.Iterations rounds. newRound is called
// once per chunk so that concurrent chunks never share buffers.
func (c *Config) run(ctx context.Context, op string, seed int64, newRound func() roundFunc) (Distribution, error) {
	start := time.Now()
	d := make(Distribution, c.Iterations)
	nchunks := (len(d) + chunkSize - 1) / chunkSize

	fill := func(k int) {
		r := rand.New(rand.NewSource(chunkSeed(seed, k)))
		round := newRound()
		for i := k * chunkSize; i < min((k+1)*chunkSize, len(d)); i++ {
			d[i] = round(r)
		}
	}

	if c.Workers <= 1 {
		for k := 0; k < nchunks; k++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fill(k)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.Workers)
		for k := 0; k < nchunks; k++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fill(k)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	c.logger().Debug("bootstrap finished",
		zap.String("op", op),
		zap.Int("iterations", c.Iterations),
		zap.Int("workers", c.Workers),
		zap.Int("resample_size", c.ResampleSize),
		zap.Int64("seed", seed),
		zap.Duration("elapsed", time.Since(start)))
	return d, nil
}

// chunkSeed derives the seed of chunk k from the computation's seed
// using the splitmix64 finalizer.
func chunkSeed(seed int64, k int) int64 {
	z := uint64(seed) + uint64(k+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
