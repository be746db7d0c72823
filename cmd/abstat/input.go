// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// readNumbers parses white-space separated numbers from r. A "#"
// starts a comment that extends to the end of its line.
func readNumbers(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Errorf("line %d: bad number %q", line, field)
			}
			xs = append(xs, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return xs, nil
}

// readFile reads the numbers in the named file.
func readFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	xs, err := readNumbers(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if len(xs) == 0 {
		return nil, errors.Errorf("%s: no numbers", path)
	}
	return xs, nil
}
