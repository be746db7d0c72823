// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package absegment checks that the users of an experiment are split
// evenly across segments such as country or acquisition channel.
//
// A split that is independent of every segment column is a sign that
// assignment to treatment and control worked as intended. Count
// tabulates users per split and segment value, and Balance tests the
// table for independence.
package absegment

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/abstat/abstat/aberr"
	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/internal/texttab"
)

// A Row is one user's assignment.
type Row struct {
	User  string
	Split string

	// Segments maps a segment column, such as "country", to the
	// user's value in that column.
	Segments map[string]string
}

// A Table counts users per split and segment value of one column.
type Table struct {
	// Column is the segment column that was counted.
	Column string

	// Splits and Values are sorted.
	Splits []string
	Values []string

	// Counts[i][j] is the number of users in Splits[i] with segment
	// value Values[j].
	Counts [][]int

	// Skipped is the number of rows without a user or without a
	// value for Column.
	Skipped int
}

// Count tabulates rows by split and by their value of column.
//
// Rows with an empty User or without a value for column are not
// counted, but are reported in Table.Skipped.
func Count(rows []Row, column string) (*Table, error) {
	const op = "absegment.Count"
	if column == "" {
		return nil, aberr.Invalid(op, "segment column is empty")
	}
	if len(rows) == 0 {
		return nil, aberr.Invalid(op, "no rows")
	}
	for i, r := range rows {
		if r.Split == "" {
			return nil, aberr.Invalid(op, "row %d has no split", i)
		}
	}

	counted := lo.Filter(rows, func(r Row, _ int) bool {
		_, ok := r.Segments[column]
		return r.User != "" && ok
	})
	if len(counted) == 0 {
		return nil, aberr.Invalid(op, "no row has a value for column %q", column)
	}
	t := &Table{
		Column:  column,
		Splits:  lo.Uniq(lo.Map(counted, func(r Row, _ int) string { return r.Split })),
		Values:  lo.Uniq(lo.Map(counted, func(r Row, _ int) string { return r.Segments[column] })),
		Skipped: len(rows) - len(counted),
	}
	sort.Strings(t.Splits)
	sort.Strings(t.Values)

	splitIdx := index(t.Splits)
	valueIdx := index(t.Values)
	t.Counts = make([][]int, len(t.Splits))
	for i := range t.Counts {
		t.Counts[i] = make([]int, len(t.Values))
	}
	for _, r := range counted {
		t.Counts[splitIdx[r.Split]][valueIdx[r.Segments[column]]]++
	}
	return t, nil
}

// CountAll runs Count for each of columns.
func CountAll(rows []Row, columns []string) ([]*Table, error) {
	tables := make([]*Table, 0, len(columns))
	for _, c := range columns {
		t, err := Count(rows, c)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func index(keys []string) map[string]int {
	return lo.SliceToMap(keys, func(k string) (string, int) {
		return k, sort.SearchStrings(keys, k)
	})
}

// Balance tests whether the split is independent of the segment value
// using Pearson's chi-squared test without continuity correction.
//
// If the p-value is below alpha, the result carries a warning that the
// split is unbalanced.
func (t *Table) Balance(alpha float64) (abmath.ChiSquaredResult, error) {
	const op = "absegment.Balance"
	if !(alpha > 0 && alpha < 1) {
		return abmath.ChiSquaredResult{}, aberr.Invalid(op, "alpha %v outside (0, 1)", alpha)
	}
	observed := lo.Map(t.Counts, func(row []int, _ int) []float64 {
		return lo.Map(row, func(n int, _ int) float64 { return float64(n) })
	})
	res, err := abmath.ChiSquared(observed, false)
	if err != nil {
		return res, err
	}
	if res.P < alpha {
		res.Warnings = append(res.Warnings, errors.Errorf("splits are unbalanced across %s (p=%.3g)", t.Column, res.P))
	}
	return res, nil
}

// Total returns the number of users in each split.
func (t *Table) Total() []int {
	return lo.Map(t.Counts, func(row []int, _ int) int { return lo.Sum(row) })
}

// Format writes t as a text table with one line per segment value and
// one column per split, each count followed by its share of the
// split.
func (t *Table) Format(w io.Writer) error {
	var tab texttab.Table
	tab.Row().Cell(t.Column)
	for _, s := range t.Splits {
		tab.Cell(s, texttab.Right).Cell("")
	}
	tab.Rule()
	totals := t.Total()
	for j, v := range t.Values {
		tab.Row().Cell(v)
		for i := range t.Splits {
			n := t.Counts[i][j]
			tab.Cell(fmt.Sprint(n), texttab.Right).Cell(share(n, totals[i]), texttab.Right)
		}
	}
	tab.Rule()
	tab.Row().Cell("total")
	for _, n := range totals {
		tab.Cell(fmt.Sprint(n), texttab.Right).Cell("")
	}
	return tab.Format(w)
}

func share(n, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// ChiSquaredSegments tests whether two observed frequency vectors,
// such as per-segment counts of two splits, come from the same
// distribution. It applies Yates' correction when the vectors have
// two elements.
func ChiSquaredSegments(counts1, counts2 []float64) (abmath.ChiSquaredResult, error) {
	if len(counts1) != len(counts2) {
		return abmath.ChiSquaredResult{}, aberr.Invalid("absegment.ChiSquaredSegments", "frequency vectors have lengths %d and %d", len(counts1), len(counts2))
	}
	return abmath.ChiSquared([][]float64{counts1, counts2}, true)
}
