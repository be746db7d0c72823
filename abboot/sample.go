// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abboot

import (
	"math"

	"github.com/abstat/abstat/aberr"
)

// A Sample is a set of observations of one arm of an experiment.
//
// Resampling never modifies a Sample; each draw copies values into
// buffers owned by the engine.
type Sample struct {
	// Values are the observations. Order does not matter.
	Values []float64

	// Denominators, if non-nil, holds one positive weight per
	// value. Rate divides the sum of the values by the sum of
	// the denominators, which turns per-user counts into a
	// per-session rate. Values and their denominators are
	// always resampled together.
	Denominators []float64
}

// NewSample returns a Sample of values with no denominators.
func NewSample(values ...float64) Sample {
	return Sample{Values: values}
}

func (s Sample) check(op, name string) error {
	if len(s.Values) == 0 {
		return aberr.Invalid(op, "%s sample is empty", name)
	}
	if s.Denominators == nil {
		return nil
	}
	if len(s.Denominators) != len(s.Values) {
		return aberr.Invalid(op, "%s sample has %d values but %d denominators", name, len(s.Values), len(s.Denominators))
	}
	for i, d := range s.Denominators {
		if !(d > 0) || math.IsInf(d, 0) {
			return aberr.Invalid(op, "%s sample denominator %d is %v, want a positive number", name, i, d)
		}
	}
	return nil
}

// checkBinary verifies that every value is 0 or 1.
func (s Sample) checkBinary(op, name string) error {
	for i, v := range s.Values {
		if v != 0 && v != 1 {
			return aberr.Invalid(op, "%s sample value %d is %v, want 0 or 1", name, i, v)
		}
	}
	return nil
}

const rot = 23

// hash mixes the sample's values and denominators into a seed.
func (s Sample) hash() int64 {
	var x int64
	mix := func(vs []float64) {
		for _, v := range vs {
			xlow := (x >> (64 - rot)) & (1<<rot - 1)
			x = (x << rot) ^ xlow ^ int64(math.Float64bits(v))
		}
	}
	mix(s.Values)
	mix(s.Denominators)
	return x
}

// A resampler draws resamples of one Sample into reusable buffers.
type resampler struct {
	s      Sample
	values []float64
	dens   []float64
}

func newResampler(s Sample, size int) *resampler {
	if size == 0 {
		size = len(s.Values)
	}
	r := &resampler{s: s, values: make([]float64, size)}
	if s.Denominators != nil {
		r.dens = make([]float64, size)
	}
	return r
}

// draw fills the buffers with values chosen uniformly with
// replacement from the sample and returns stat applied to them.
func (r *resampler) draw(rng intner, stat Statistic) float64 {
	n := len(r.s.Values)
	for i := range r.values {
		j := rng.Intn(n)
		r.values[i] = r.s.Values[j]
		if r.dens != nil {
			r.dens[i] = r.s.Denominators[j]
		}
	}
	return stat.Compute(r.values, r.dens)
}

type intner interface {
	Intn(n int) int
}
