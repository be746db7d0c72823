// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abboot

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
)

// An Interval is a point estimate with a bootstrap confidence
// interval around it.
type Interval struct {
	// Lo and Hi bound the confidence interval.
	Lo, Hi float64

	// Center is the statistic computed on the original data.
	Center float64

	// Alpha is the significance level: the interval has
	// confidence 1-Alpha.
	Alpha float64

	// Iterations is the number of resamples the interval was
	// computed from.
	Iterations int

	// Method is the method used to compute Lo and Hi.
	Method Method
}

func (c *Config) interval(d Distribution, center float64) Interval {
	sorted := append([]float64(nil), d...)
	sort.Float64s(sorted)
	lo := percentile(sorted, c.Alpha/2)
	hi := percentile(sorted, 1-c.Alpha/2)
	if c.Method == Pivotal {
		lo, hi = 2*center-hi, 2*center-lo
	}
	return Interval{Lo: lo, Hi: hi, Center: center, Alpha: c.Alpha, Iterations: len(d), Method: c.Method}
}

// Contains reports whether x lies within the interval.
func (i Interval) Contains(x float64) bool {
	return i.Lo <= x && x <= i.Hi
}

// ExcludesZero reports whether the interval lies entirely on one side
// of zero. For a Difference comparison, this means the difference is
// significant at level Alpha.
func (i Interval) ExcludesZero() bool {
	return i.Lo > 0 || i.Hi < 0
}

// String formats the interval as "center [lo, hi] (95% CI)".
func (i Interval) String() string {
	return fmt.Sprintf("%.4g [%.4g, %.4g] (%.4g%% CI)", i.Center, i.Lo, i.Hi, 100*(1-i.Alpha))
}

// PctRangeString returns a string representation of the range of this
// interval as a percentage of its center.
func (i Interval) PctRangeString() string {
	if math.IsInf(i.Lo, 0) || math.IsInf(i.Hi, 0) {
		return "∞"
	}

	// If the signs of the bounds differ from the center, we can't
	// render it as a percent.
	var csign = mathx.Sign(i.Center)
	if csign != mathx.Sign(i.Lo) || csign != mathx.Sign(i.Hi) {
		return "?"
	}

	if i.Center == 0 {
		return "0%"
	}

	v := math.Max(i.Hi/i.Center-1, 1-i.Lo/i.Center)
	return fmt.Sprintf("%.0f%%", 100*v)
}

// percentile returns the p'th quantile of the ascending slice a.
//
// The quantile is found by linear interpolation between the order
// statistics a[⌊h⌋] and a[⌊h⌋+1] at h = (len(a)-1)*p, which is method
// R7 of Hyndman and Fan (1996) and the default of most numeric
// libraries. p is clamped to [0, 1].
func percentile(a []float64, p float64) float64 {
	if len(a) == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return a[0]
	}
	n := len(a)
	if p >= 1 {
		return a[n-1]
	}
	f := float64(float64(n-1) * p) // Suppress fused-multiply-add
	i := int(f)
	x := f - float64(i)
	r := a[i]
	if x > 0 && i+1 < n && a[i+1] != r {
		r += float64(x * (a[i+1] - r)) // Suppress fused-multiply-add
	}
	return r
}
