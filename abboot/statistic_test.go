// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abboot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	values := []float64{4, 1, 3, 2}
	tests := []struct {
		stat Statistic
		dens []float64
		want float64
	}{
		{Mean, nil, 2.5},
		{Mean, []float64{1, 1, 2, 4}, 2.5},
		{Sum, nil, 10},
		{Rate, nil, 2.5},
		{Rate, []float64{1, 1, 2, 4}, 1.25},
		{Median, nil, 2.5},
		{StdDev, nil, 1.2909944487358056},
	}
	for _, test := range tests {
		got := test.stat.Compute(values, test.dens)
		assert.InDelta(t, test.want, got, 1e-12, "%s with denominators %v", test.stat.Label(), test.dens)
	}
	// Median sorts a copy.
	assert.Equal(t, []float64{4, 1, 3, 2}, values)

	assert.True(t, math.IsNaN(Rate.Compute(nil, nil)))
	assert.InDelta(t, 3.0, Median.Compute([]float64{5, 3, 1}, nil), 1e-12)

	max := StatisticFunc(func(v, _ []float64) float64 {
		m := math.Inf(-1)
		for _, x := range v {
			m = math.Max(m, x)
		}
		return m
	})
	assert.Equal(t, 4.0, max.Compute(values, nil))
	assert.Equal(t, "custom", max.Label())
}

func TestCompares(t *testing.T) {
	tests := []struct {
		cmp  Compare
		t, c float64
		want float64
	}{
		{Difference, 3, 1, 2},
		{Ratio, 3, 1, 3},
		{PercentChange, 3, 1, 200},
		{PercentChange, 1, -2, 150},
		{PercentDifference, 3, 1, 100},
		{CompareFunc(func(t, c float64) float64 { return t * c }), 3, 2, 6},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.cmp.Combine(test.t, test.c), test.cmp.Label())
	}
}

func TestParse(t *testing.T) {
	for _, s := range []Statistic{Mean, Sum, Rate, Median, StdDev} {
		got, err := ParseStatistic(s.Label())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatistic("mode")
	assert.Error(t, err)

	for _, c := range []Compare{Difference, Ratio, PercentChange, PercentDifference} {
		got, err := ParseCompare(c.Label())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCompare("Difference")
	require.NoError(t, err)
	assert.Equal(t, Difference, got)
	_, err = ParseCompare("odds")
	assert.Error(t, err)
}
