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

func TestBoxCox(t *testing.T) {
	check := func(x []float64, wantLambda float64) {
		t.Helper()
		y, lambda, err := BoxCox(x)
		require.NoError(t, err)
		assert.InDelta(t, wantLambda, lambda, 1e-3, "λ for %v", x)
		want, err := BoxCoxTransform(x, lambda)
		require.NoError(t, err)
		assert.Equal(t, want, y)
	}
	check([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.72196)
	check([]float64{0.5, 1, 1, 2, 2, 2, 4, 4, 8, 16, 32}, -0.19374)

	// Log-normal data is made normal by λ ≈ 0.
	rng := rand.New(rand.NewSource(3))
	x := make([]float64, 500)
	for i := range x {
		x[i] = math.Exp(1 + rng.NormFloat64())
	}
	_, lambda, err := BoxCox(x)
	require.NoError(t, err)
	assert.InDelta(t, 0, lambda, 0.25)

	_, _, err = BoxCox([]float64{1, -2, 3})
	checkInvalid(t, "negative", err)
	_, _, err = BoxCox([]float64{3, 3, 3})
	checkInvalid(t, "constant", err)
	_, _, err = BoxCox(nil)
	checkInvalid(t, "empty", err)
}

func TestBoxCoxTransform(t *testing.T) {
	y, err := BoxCoxTransform([]float64{1, math.E, 4}, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, math.Log(4)}, y, 1e-15)

	y, err = BoxCoxTransform([]float64{1, 2, 4}, 0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2 * (math.Sqrt2 - 1), 2}, y, 1e-15)

	y, err = BoxCoxTransform([]float64{1, 2, 4}, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 3}, y, 1e-15)

	_, err = BoxCoxTransform([]float64{0, 1}, 1)
	checkInvalid(t, "zero", err)
}
