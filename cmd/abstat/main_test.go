// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abstat/abstat/aberr"
)

// run executes abstat with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	a := newApp(&out)
	a.log = zaptest.NewLogger(t)
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

// writeFile writes content to a new file in a temporary directory and
// returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))
	return path
}

func TestReadNumbers(t *testing.T) {
	xs, err := readNumbers(strings.NewReader("# revenue\n1 2.5\t3\n\n4e1 # last\n-5\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3, 40, -5}, xs)

	_, err = readNumbers(strings.NewReader("1 2\nthree\n"))
	assert.EqualError(t, err, `line 2: bad number "three"`)

	_, err = readFile(writeFile(t, "empty.txt", "# nothing\n"))
	assert.Error(t, err)
	_, err = readFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCI(t *testing.T) {
	data := writeFile(t, "data.txt", "1 2 3 4 5\n")
	out, err := run(t, "ci", "--seed", "1", "--iterations", "2000", data)
	require.NoError(t, err)
	assert.Contains(t, out, "n       5\n")
	assert.Regexp(t, `mean    3 \[[0-9.]+, [0-9.]+\] \(95% CI\)`, out)
	assert.Contains(t, out, "method  percentile\n")

	// Same seed, same output.
	again, err := run(t, "ci", "--seed", "1", "--iterations", "2000", "--workers", "3", data)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = run(t, "ci", "--stat", "median", "--method", "pivotal", data)
	require.NoError(t, err)
	assert.Contains(t, out, "median  3 [")
	assert.Contains(t, out, "method  pivotal\n")

	conv := writeFile(t, "conv.txt", "1 0 1 1 0\n")
	out, err = run(t, "ci", "--binomial", conv)
	require.NoError(t, err)
	assert.Contains(t, out, "rate    0.6 [")

	dens := writeFile(t, "dens.txt", "2 2 2 2 2\n")
	out, err = run(t, "ci", "--stat", "rate", "--denominators", dens, data)
	require.NoError(t, err)
	assert.Contains(t, out, "rate    1.5 [")

	_, err = run(t, "ci", "--binomial", data)
	assert.True(t, aberr.IsInvalidInput(err), "got %v", err)
	_, err = run(t, "ci", "--stat", "mode", data)
	assert.True(t, aberr.IsInvalidInput(err), "got %v", err)
	_, err = run(t, "ci", "--method", "bca", data)
	assert.True(t, aberr.IsInvalidInput(err), "got %v", err)
	_, err = run(t, "ci", "--alpha", "1", data)
	assert.True(t, aberr.IsInvalidInput(err), "got %v", err)
}

func TestConfigFile(t *testing.T) {
	data := writeFile(t, "data.txt", "1 2 3 4 5\n")
	cfg := writeFile(t, "abstat.yaml", "alpha: 0.1\niterations: 500\nseed: 7\n")

	out, err := run(t, "--config", cfg, "ci", data)
	require.NoError(t, err)
	assert.Contains(t, out, "(90% CI)")

	// Flags take precedence over the file.
	out, err = run(t, "--config", cfg, "--alpha", "0.2", "ci", data)
	require.NoError(t, err)
	assert.Contains(t, out, "(80% CI)")

	bad := writeFile(t, "bad.yaml", "alhpa: 0.1\n")
	_, err = run(t, "--config", bad, "ci", data)
	assert.ErrorContains(t, err, "alhpa")
}

func TestCompare(t *testing.T) {
	treatment := writeFile(t, "t.txt", "1 2 3 4 5")
	control := writeFile(t, "c.txt", "2 3 4 5 6")
	out, err := run(t, "compare", "--iterations", "1000", treatment, control)
	require.NoError(t, err)
	assert.Regexp(t, `treatment +n=5 +mean=3\n`, out)
	assert.Regexp(t, `control +n=5 +mean=4\n`, out)
	assert.Regexp(t, `difference +-1 \[`, out)
	assert.Regexp(t, `t-test +t=-1 +p=0\.347 n=5 +~`, out)
	assert.Contains(t, out, "mann-whitney")

	conv1 := writeFile(t, "c1.txt", "1 1 1 1 0 0 0 0 1 1")
	conv2 := writeFile(t, "c2.txt", "0 0 1 0 0 0 0 0 1 0")
	out, err = run(t, "compare", "--binomial", "--iterations", "1000", conv1, conv2)
	require.NoError(t, err)
	assert.Contains(t, out, "rate=0.6")
	assert.Contains(t, out, "rate=0.2")
	assert.Regexp(t, `difference +0\.4 \[`, out)
	assert.Contains(t, out, "z-test")
	assert.Contains(t, out, "chi-squared")
	assert.Contains(t, out, "fisher")
	assert.Contains(t, out, "warning: chi-squared: expected frequency below 5")

	_, err = run(t, "compare", "--compare", "log-ratio", treatment, control)
	assert.True(t, aberr.IsInvalidInput(err), "got %v", err)
	_, err = run(t, "compare", treatment)
	assert.Error(t, err)
}

func TestProportions(t *testing.T) {
	out, err := run(t, "proportions", "45", "100", "30", "100")
	require.NoError(t, err)
	assert.Regexp(t, `first +45/100 +45%\n`, out)
	assert.Regexp(t, `second +30/100 +30%\n`, out)
	assert.Regexp(t, `z-test +z=2\.191 +p=0\.028 n=100 +significant`, out)
	assert.Regexp(t, `chi-squared +χ²=4\.181 +p=0\.041 n=100 +significant`, out)
	assert.Regexp(t, `fisher +odds=1\.909 +p=0\.041 n=100 +significant`, out)

	out, err = run(t, "proportions", "--yates=false", "--alternative", "larger", "45", "100", "30", "100")
	require.NoError(t, err)
	assert.Regexp(t, `z-test +z=2\.191 +p=0\.014`, out)
	assert.Regexp(t, `chi-squared +χ²=4\.8 +p=0\.028`, out)

	_, err = run(t, "proportions", "45", "100", "thirty", "100")
	assert.EqualError(t, err, `bad count "thirty"`)
	_, err = run(t, "proportions", "45", "40", "30", "100")
	assert.NoError(t, err, "per-test errors are reported in the table")
}

func TestNormality(t *testing.T) {
	data := writeFile(t, "data.txt", "1 2 3 4 5 6 7 8 9 10")
	out, err := run(t, "normality", "--transform", data)
	require.NoError(t, err)
	assert.Regexp(t, `n +10\n`, out)
	assert.Contains(t, out, "shapiro-wilk")
	assert.Contains(t, out, "lilliefors")
	assert.Contains(t, out, "box-cox λ=0.72")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "0", lines[len(lines)-10])

	neg := writeFile(t, "neg.txt", "-1 2 3 4 5")
	out, err = run(t, "normality", neg)
	require.NoError(t, err)
	assert.Contains(t, out, "box-cox: ")
}

func TestSampleSize(t *testing.T) {
	out, err := run(t, "samplesize", "binomial", "0.13", "0.15")
	require.NoError(t, err)
	assert.Equal(t, "4720 per arm (power 0.8, significance 0.05)\n", out)

	out, err = run(t, "samplesize", "continuous", "--power", "0.9", "--significance", "0.01", "10", "12", "4")
	require.NoError(t, err)
	assert.Equal(t, "120 per arm (power 0.9, significance 0.01)\n", out)

	cfg := writeFile(t, "power.yaml", "power: 0.9\nsignificance: 0.01\n")
	out, err = run(t, "--config", cfg, "samplesize", "binomial", "0.1", "0.2")
	require.NoError(t, err)
	assert.Equal(t, "370 per arm (power 0.9, significance 0.01)\n", out)

	_, err = run(t, "samplesize", "binomial", "0.2", "0.2")
	assert.True(t, aberr.IsInvalidInput(err), "got %v", err)
	_, err = run(t, "samplesize", "continuous", "1", "2", "x")
	assert.EqualError(t, err, `bad number "x"`)
}
