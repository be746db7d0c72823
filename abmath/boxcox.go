// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/abstat/abstat/aberr"
)

// BoxCox transforms the positive sample x by the Box-Cox power
// transform whose λ maximizes the normal log-likelihood of the
// transformed data. It returns the transformed sample and λ.
func BoxCox(x []float64) (transformed []float64, lambda float64, err error) {
	const op = "abmath.BoxCox"
	if err := checkPositive(op, x); err != nil {
		return nil, 0, err
	}
	if floats.Min(x) == floats.Max(x) {
		return nil, 0, aberr.Invalid(op, "all values are equal; λ is undefined")
	}

	sumLog := 0.0
	for _, v := range x {
		sumLog += math.Log(v)
	}
	buf := make([]float64, len(x))
	problem := optimize.Problem{
		Func: func(l []float64) float64 {
			llf := boxCoxLLF(x, l[0], sumLog, buf)
			if math.IsNaN(llf) || math.IsInf(llf, 0) {
				return math.Inf(1)
			}
			return -llf
		},
	}
	res, err := optimize.Minimize(problem, []float64{0}, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, 0, aberr.Computation(op, err)
	}
	lambda = res.X[0]
	transformed, err = BoxCoxTransform(x, lambda)
	return transformed, lambda, err
}

// BoxCoxTransform applies the Box-Cox power transform with parameter
// lambda to the positive sample x: (x^λ - 1)/λ, or log(x) if λ is 0.
func BoxCoxTransform(x []float64, lambda float64) ([]float64, error) {
	if err := checkPositive("abmath.BoxCoxTransform", x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	boxCoxInto(out, x, lambda)
	return out, nil
}

func boxCoxInto(dst, x []float64, lambda float64) {
	for i, v := range x {
		if lambda == 0 {
			dst[i] = math.Log(v)
		} else {
			dst[i] = (math.Pow(v, lambda) - 1) / lambda
		}
	}
}

// boxCoxLLF is the profile log-likelihood of lambda, up to a constant.
func boxCoxLLF(x []float64, lambda, sumLog float64, buf []float64) float64 {
	boxCoxInto(buf, x, lambda)
	n := float64(len(x))
	mean := floats.Sum(buf) / n
	v := 0.0
	for _, y := range buf {
		v += (y - mean) * (y - mean)
	}
	return (lambda-1)*sumLog - n/2*math.Log(v/n)
}

func checkPositive(op string, x []float64) error {
	if len(x) == 0 {
		return aberr.Invalid(op, "sample is empty")
	}
	for i, v := range x {
		if !(v > 0) || math.IsInf(v, 0) {
			return aberr.Invalid(op, "value %d is %v; data must be positive", i, v)
		}
	}
	return nil
}
