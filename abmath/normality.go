// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/abstat/abstat/aberr"
)

// ShapiroWilk performs the Shapiro-Wilk test of the null hypothesis
// that x was drawn from a normal distribution. The statistic is W.
//
// This uses Royston's (1995) approximations for the coefficients and
// the p-value (algorithm AS R94), which are valid for 3 <= len(x) <=
// 5000.
func ShapiroWilk(x []float64) (Result, error) {
	const op = "abmath.ShapiroWilk"
	n := len(x)
	if n < 3 {
		return Result{}, aberr.Invalid(op, "need at least 3 values, got %d", n)
	}
	xs := append([]float64(nil), x...)
	sort.Float64s(xs)
	if xs[0] == xs[n-1] {
		return Result{}, aberr.Computation(op, stats.ErrSamplesEqual)
	}
	res := Result{N1: n}
	if n > 5000 {
		res.Warnings = append(res.Warnings, errors.New("p-value may be inaccurate for more than 5000 values"))
	}

	a := swCoefficients(n)
	mean := stats.Mean(xs)
	num, ss := 0.0, 0.0
	for i, v := range xs {
		num += a[i] * v
		ss += (v - mean) * (v - mean)
	}
	w := num * num / ss
	if w > 1 {
		w = 1
	}
	res.Statistic = w
	res.P = swPValue(w, n)
	return res, nil
}

var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// poly evaluates the polynomial c[0] + c[1]x + c[2]x² + ...
func poly(c []float64, x float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// swCoefficients returns the antisymmetric Shapiro-Wilk weights for
// an ascending sample of size n.
func swCoefficients(n int) []float64 {
	a := make([]float64, n)
	if n == 3 {
		a[0], a[2] = -math.Sqrt(0.5), math.Sqrt(0.5)
		return a
	}
	fn := float64(n)
	m := make([]float64, n)
	summ2 := 0.0
	for i := range m {
		m[i] = stats.StdNormal.InvCDF((float64(i+1) - 0.375) / (fn + 0.25))
		summ2 += m[i] * m[i]
	}
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(fn)

	an := m[n-1]/ssumm2 + poly(swC1, rsn)
	var eps float64
	fixed := 1
	if n > 5 {
		an1 := m[n-2]/ssumm2 + poly(swC2, rsn)
		eps = (summ2 - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		a[n-2], a[1] = an1, -an1
		fixed = 2
	} else {
		eps = (summ2 - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
	}
	a[n-1], a[0] = an, -an
	for i := fixed; i < n-fixed; i++ {
		a[i] = m[i] / math.Sqrt(eps)
	}
	return a
}

// swPValue returns the upper-tail p-value of W for sample size n.
func swPValue(w float64, n int) float64 {
	fn := float64(n)
	if n == 3 {
		// Exact for n = 3.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Pi/3)
		return math.Max(p, 0)
	}
	y := math.Log(1 - w)
	var m, s float64
	if n <= 11 {
		gamma := poly(swG, fn)
		if y >= gamma {
			return 1e-99
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, fn)
		s = math.Exp(poly(swC4, fn))
	} else {
		ln := math.Log(fn)
		m = poly(swC5, ln)
		s = math.Exp(poly(swC6, ln))
	}
	return 1 - stats.StdNormal.CDF((y-m)/s)
}

// lillieforsSims is the number of simulated samples used to estimate
// large Lilliefors p-values.
const lillieforsSims = 2000

// Lilliefors performs the Lilliefors test of the null hypothesis that
// x was drawn from a normal distribution with unknown mean and
// variance. The statistic is the Kolmogorov-Smirnov distance between
// the sample and the normal distribution fitted to it.
//
// P-values up to 0.1 use the Dallal-Wilkinson (1986) approximation.
// Above that the approximation is poor, so the p-value is estimated by
// simulating normal samples of the same size, seeded from x so that
// the result is reproducible.
func Lilliefors(x []float64) (Result, error) {
	const op = "abmath.Lilliefors"
	n := len(x)
	if n < 4 {
		return Result{}, aberr.Invalid(op, "need at least 4 values, got %d", n)
	}
	xs := append([]float64(nil), x...)
	sort.Float64s(xs)
	if xs[0] == xs[n-1] {
		return Result{}, aberr.Computation(op, stats.ErrSamplesEqual)
	}
	d := ksNormal(xs)
	res := Result{Statistic: d, N1: n}
	if p := dallalWilkinson(d, n); p <= 0.1 {
		res.P = p
		return res, nil
	}

	var seed int64
	for _, v := range xs {
		seed = seed*31 + int64(math.Float64bits(v))
	}
	r := rand.New(rand.NewSource(seed))
	sim := make([]float64, n)
	exceed := 0
	for i := 0; i < lillieforsSims; i++ {
		for j := range sim {
			sim[j] = r.NormFloat64()
		}
		sort.Float64s(sim)
		if ksNormal(sim) >= d {
			exceed++
		}
	}
	res.P = float64(exceed+1) / float64(lillieforsSims+1)
	return res, nil
}

// ksNormal returns the Kolmogorov-Smirnov distance between the
// ascending sample xs and the normal distribution with the sample's
// mean and standard deviation.
func ksNormal(xs []float64) float64 {
	n := float64(len(xs))
	dist := stats.NormalDist{Mu: stats.Mean(xs), Sigma: stats.StdDev(xs)}
	d := 0.0
	for i, v := range xs {
		f := dist.CDF(v)
		d = math.Max(d, math.Max(float64(i+1)/n-f, f-float64(i)/n))
	}
	return d
}

// dallalWilkinson approximates the upper tail of the Lilliefors
// distribution. It is accurate for p-values below 0.1.
func dallalWilkinson(d float64, n int) float64 {
	fn := float64(n)
	if n > 100 {
		d *= math.Pow(fn/100, 0.49)
		fn = 100
	}
	return math.Exp(-7.01256*d*d*(fn+2.78019) + 2.99587*d*math.Sqrt(fn+2.78019) - 0.122119 + 0.974598/math.Sqrt(fn) + 1.67997/fn)
}
