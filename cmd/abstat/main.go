// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Abstat computes statistics for A/B experiments.
//
// Usage:
//
//	abstat [flags] command [args]
//
// The commands are:
//
//	ci FILE                       bootstrap confidence interval of a statistic
//	compare TREATMENT CONTROL     compare two arms by bootstrap, t-test and U-test
//	proportions S1 N1 S2 N2       z, chi-squared and Fisher tests of two conversion rates
//	normality FILE                Shapiro-Wilk and Lilliefors tests, Box-Cox λ
//	samplesize binomial P0 P1     users per arm to detect a change in conversion rate
//	samplesize continuous M1 M2 SD  users per arm to detect a change in mean
//
// Input files hold numbers separated by white space. A “#” starts a
// comment that runs to the end of the line. For binomial metrics the
// numbers must be 0 or 1.
//
// The -config flag names a YAML file whose keys (alpha, iterations,
// seed, workers, resample_size, method, power, significance) replace
// the built-in defaults. Flags given on the command line take
// precedence over the file.
//
// Bootstrap results are reproducible: with -seed 0 (the default) the
// random seed is derived from the input data.
//
// Example
//
// Suppose treatment.txt and control.txt hold the revenue per user of
// the two arms of an experiment. Then
//
//	abstat compare -compare percent-change treatment.txt control.txt
//
// prints the bootstrap estimate of the relative change in mean revenue
// and its 95% confidence interval, followed by a Student t-test and a
// Mann-Whitney U-test of the same data.
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdout).command().Execute(); err != nil {
		os.Exit(1)
	}
}
