// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abboot

import (
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/abstat/abstat/aberr"
)

// A Statistic reduces a sample to a single number.
//
// Compute receives the sample values and, for samples that carry
// them, the denominators of each value. denominators is nil for
// samples without denominators. Compute must not modify or retain
// either slice.
type Statistic interface {
	// Label returns a short name for the statistic, such as
	// "mean".
	Label() string

	Compute(values, denominators []float64) float64
}

var (
	// Mean is the arithmetic mean of the values. Denominators
	// are ignored.
	Mean Statistic = mean{}

	// Sum is the sum of the values. Denominators are ignored.
	Sum Statistic = sum{}

	// Rate is the sum of the values divided by the sum of the
	// denominators, or by the number of values if there are no
	// denominators. For 0/1 values this is a conversion rate.
	Rate Statistic = rate{}

	// Median is the sample median.
	Median Statistic = median{}

	// StdDev is the sample standard deviation.
	StdDev Statistic = stddev{}
)

type mean struct{}

func (mean) Label() string { return "mean" }

func (mean) Compute(values, _ []float64) float64 {
	return stats.Mean(values)
}

type sum struct{}

func (sum) Label() string { return "sum" }

func (sum) Compute(values, _ []float64) float64 {
	return floats.Sum(values)
}

type rate struct{}

func (rate) Label() string { return "rate" }

func (rate) Compute(values, denominators []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	den := float64(len(values))
	if denominators != nil {
		den = floats.Sum(denominators)
	}
	return floats.Sum(values) / den
}

type median struct{}

func (median) Label() string { return "median" }

func (median) Compute(values, _ []float64) float64 {
	// Quantile sorts a copy; values is left alone.
	return stats.Sample{Xs: values}.Quantile(0.5)
}

type stddev struct{}

func (stddev) Label() string { return "stddev" }

func (stddev) Compute(values, _ []float64) float64 {
	return stats.StdDev(values)
}

// StatisticFunc adapts an ordinary function to a Statistic. Its label
// is "custom".
type StatisticFunc func(values, denominators []float64) float64

func (StatisticFunc) Label() string { return "custom" }

func (f StatisticFunc) Compute(values, denominators []float64) float64 {
	return f(values, denominators)
}

// ParseStatistic returns the built-in Statistic with the given label.
func ParseStatistic(label string) (Statistic, error) {
	for _, s := range []Statistic{Mean, Sum, Rate, Median, StdDev} {
		if s.Label() == strings.ToLower(label) {
			return s, nil
		}
	}
	return nil, aberr.Invalid("abboot.ParseStatistic", "unknown statistic %q", label)
}

// A Compare combines the statistics of a treatment and a control
// sample into a single number.
type Compare interface {
	Label() string
	Combine(treatment, control float64) float64
}

var (
	// Difference is treatment - control.
	Difference Compare = difference{}

	// Ratio is treatment / control.
	Ratio Compare = ratio{}

	// PercentChange is the change from control to treatment as a
	// percentage of |control|.
	PercentChange Compare = percentChange{}

	// PercentDifference is the difference between treatment and
	// control as a percentage of their average.
	PercentDifference Compare = percentDifference{}
)

type difference struct{}

func (difference) Label() string { return "difference" }

func (difference) Combine(t, c float64) float64 { return t - c }

type ratio struct{}

func (ratio) Label() string { return "ratio" }

func (ratio) Combine(t, c float64) float64 { return t / c }

type percentChange struct{}

func (percentChange) Label() string { return "percent-change" }

func (percentChange) Combine(t, c float64) float64 {
	return (t - c) * 100 / math.Abs(c)
}

type percentDifference struct{}

func (percentDifference) Label() string { return "percent-difference" }

func (percentDifference) Combine(t, c float64) float64 {
	return (t - c) * 100 / ((t + c) / 2)
}

// CompareFunc adapts an ordinary function to a Compare. Its label is
// "custom".
type CompareFunc func(treatment, control float64) float64

func (CompareFunc) Label() string { return "custom" }

func (f CompareFunc) Combine(treatment, control float64) float64 {
	return f(treatment, control)
}

// ParseCompare returns the built-in Compare with the given label.
func ParseCompare(label string) (Compare, error) {
	for _, c := range []Compare{Difference, Ratio, PercentChange, PercentDifference} {
		if c.Label() == strings.ToLower(label) {
			return c, nil
		}
	}
	return nil, aberr.Invalid("abboot.ParseCompare", "unknown compare function %q", label)
}
