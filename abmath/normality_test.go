// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Weights of 11 men from Shapiro and Wilk (1965).
var menWeights = []float64{148, 154, 158, 160, 161, 162, 166, 170, 182, 195, 236}

func TestShapiroWilk(t *testing.T) {
	check := func(x []float64, wantW, wantP float64) {
		t.Helper()
		r, err := ShapiroWilk(x)
		require.NoError(t, err)
		assert.InDelta(t, wantW, r.Statistic, 1e-4, "W for %v", x)
		assert.InDelta(t, wantP, r.P, 1e-4, "p for %v", x)
		assert.Equal(t, len(x), r.N1)
	}
	check(menWeights, 0.78881, 0.006704)
	check([]float64{1, 2, 4}, 0.964286, 0.636887)
	check([]float64{2.1, 3.4, 1.9, 5.6, 4.4, 3.3, 2.8, 3.9, 4.1, 3.0}, 0.971391, 0.903431)

	seq := make([]float64, 20)
	for i := range seq {
		seq[i] = float64(i + 1)
	}
	check(seq, 0.960375, 0.551372)

	// Order does not matter.
	shuffled := []float64{236, 148, 182, 154, 195, 158, 170, 160, 166, 161, 162}
	r, err := ShapiroWilk(shuffled)
	require.NoError(t, err)
	assert.InDelta(t, 0.78881, r.Statistic, 1e-4)
}

func TestShapiroWilkDistributions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	normal := make([]float64, 200)
	skewed := make([]float64, 200)
	for i := range normal {
		normal[i] = rng.NormFloat64()
		skewed[i] = rng.ExpFloat64()
	}
	r, err := ShapiroWilk(normal)
	require.NoError(t, err)
	assert.Greater(t, r.P, 1e-3)
	r, err = ShapiroWilk(skewed)
	require.NoError(t, err)
	assert.Less(t, r.P, 1e-4)
	assert.Less(t, r.Statistic, 1.0)
}

func TestShapiroWilkErrors(t *testing.T) {
	_, err := ShapiroWilk([]float64{1, 2})
	checkInvalid(t, "too small", err)
	_, err = ShapiroWilk([]float64{4, 4, 4, 4})
	checkComputation(t, "constant", err)
}

func TestLilliefors(t *testing.T) {
	r, err := Lilliefors(menWeights)
	require.NoError(t, err)
	assert.InDelta(t, 0.259215357, r.Statistic, 1e-6)
	assert.InDelta(t, 0.0374076218, r.P, 1e-6)

	// Large p-values are simulated, but deterministic.
	rng := rand.New(rand.NewSource(2))
	normal := make([]float64, 60)
	for i := range normal {
		normal[i] = 5 + rng.NormFloat64()
	}
	r1, err := Lilliefors(normal)
	require.NoError(t, err)
	r2, err := Lilliefors(normal)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Greater(t, r1.P, 0.0)
	assert.LessOrEqual(t, r1.P, 1.0)

	skewed := make([]float64, 150)
	for i := range skewed {
		skewed[i] = math.Exp(2 * rng.NormFloat64())
	}
	r, err = Lilliefors(skewed)
	require.NoError(t, err)
	assert.Less(t, r.P, 0.001)

	_, err = Lilliefors([]float64{1, 2, 3})
	checkInvalid(t, "too small", err)
	_, err = Lilliefors([]float64{2, 2, 2, 2, 2})
	checkComputation(t, "constant", err)
}
