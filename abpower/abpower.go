// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abpower computes the number of observations per arm an A/B
// experiment needs to detect a given effect.
//
// Both calculators assume two equally sized arms and a two-sided test.
package abpower

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/abstat/abstat/aberr"
)

// Options are the error rates a sample size is computed for.
type Options struct {
	// Power is the probability of detecting the effect if it is
	// real, that is, 1 - β.
	Power float64

	// Significance is the false positive rate α of the test.
	Significance float64
}

// DefaultOptions is the conventional 80% power at α = 0.05.
var DefaultOptions = Options{
	Power:        0.8,
	Significance: 0.05,
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return &DefaultOptions
	}
	return o
}

func (o *Options) check(op string) error {
	if !(o.Significance > 0 && o.Significance < 1) {
		return aberr.Invalid(op, "significance %v outside (0, 1)", o.Significance)
	}
	if !(o.Power > 0 && o.Power < 1) {
		return aberr.Invalid(op, "power %v outside (0, 1)", o.Power)
	}
	if o.Power <= o.Significance {
		return aberr.Invalid(op, "power %v must exceed significance %v", o.Power, o.Significance)
	}
	return nil
}

// Binomial returns the number of observations per arm needed to
// distinguish conversion rate p0 from p1. The effect size is Cohen's
// h, and the power function counts rejections in both tails.
func Binomial(p0, p1 float64, opts *Options) (int, error) {
	const op = "abpower.Binomial"
	opts = opts.orDefault()
	if err := opts.check(op); err != nil {
		return 0, err
	}
	for _, p := range []float64{p0, p1} {
		if !(p > 0 && p < 1) {
			return 0, aberr.Invalid(op, "rate %v outside (0, 1)", p)
		}
	}
	if p0 == p1 {
		return 0, aberr.Invalid(op, "rates are equal; no effect to detect")
	}
	h := math.Abs(2*math.Asin(math.Sqrt(p0)) - 2*math.Asin(math.Sqrt(p1)))
	return solve(h, opts), nil
}

// Continuous returns the number of observations per arm needed to
// distinguish mean mu1 from mu2 when both arms have standard
// deviation sd.
func Continuous(mu1, mu2, sd float64, opts *Options) (int, error) {
	const op = "abpower.Continuous"
	opts = opts.orDefault()
	if err := opts.check(op); err != nil {
		return 0, err
	}
	if !(sd > 0) || math.IsInf(sd, 0) {
		return 0, aberr.Invalid(op, "standard deviation %v must be positive", sd)
	}
	if math.IsNaN(mu1) || math.IsNaN(mu2) || math.IsInf(mu1, 0) || math.IsInf(mu2, 0) {
		return 0, aberr.Invalid(op, "means must be finite")
	}
	if mu1 == mu2 {
		return 0, aberr.Invalid(op, "means are equal; no effect to detect")
	}
	gamma := (mu1 - mu2) / sd
	z := stats.StdNormal.InvCDF(1-opts.Significance/2) + stats.StdNormal.InvCDF(opts.Power)
	return ceil(2 * z * z / (gamma * gamma)), nil
}

// power is the probability that a two-sided z test at level alpha
// rejects when the standardized effect is h and each arm has n
// observations.
func power(h, n, crit float64) float64 {
	shift := h * math.Sqrt(n/2)
	return 1 - stats.StdNormal.CDF(crit-shift) + stats.StdNormal.CDF(-crit-shift)
}

// solve finds the smallest n at which power reaches opts.Power.
func solve(h float64, opts *Options) int {
	crit := stats.StdNormal.InvCDF(1 - opts.Significance/2)
	lo, hi := 0.0, 1.0
	for power(h, hi, crit) < opts.Power {
		lo, hi = hi, hi*2
	}
	for i := 0; i < 200 && hi-lo > 1e-9*hi; i++ {
		mid := lo + (hi-lo)/2
		if power(h, mid, crit) < opts.Power {
			lo = mid
		} else {
			hi = mid
		}
	}
	return ceil(hi)
}

// ceil rounds n up, ignoring floating-point noise just above an
// integer.
func ceil(n float64) int {
	c := math.Ceil(n - 1e-9)
	if c < 1 {
		c = 1
	}
	return int(c)
}
