// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates rows of cells and formats them with each column
// padded to its widest cell.
//
// Methods return the Table so calls can be chained.
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value string
	align align
	rule  bool
}

// Option adjusts a single cell.
type Option func(c *cell)

var (
	Left   Option = func(c *cell) { c.align = alignLeft }
	Center Option = func(c *cell) { c.align = alignCenter }
	Right  Option = func(c *cell) { c.align = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) pad(s string, w int) string {
	fill := w - utf8.RuneCountInString(s)
	if fill <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := fill / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", fill-l)
	case alignRight:
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Rule adds a row that is drawn as a horizontal line across the table.
func (t *Table) Rule() *Table {
	t.rows = append(t.rows, []cell{{rule: true}})
	return t
}

// Cell appends a cell to the current row, starting one if there is
// none.
func (t *Table) Cell(value string, opts ...Option) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	if n := len(t.rows[last]); n > t.cols {
		t.cols = n
	}
	return t
}

// Cellf is Cell with a format string.
func (t *Table) Cellf(format string, args ...any) *Table {
	return t.Cell(fmt.Sprintf(format, args...))
}

// Format writes the table to w. Columns are separated by two spaces
// and lines carry no trailing space.
func (t *Table) Format(w io.Writer) error {
	const sep = "  "
	widths := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row {
			if c.rule {
				continue
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(c.value))
		}
	}
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += len(sep)
		}
		total += w
	}

	var b strings.Builder
	for _, row := range t.rows {
		b.Reset()
		if len(row) == 1 && row[0].rule {
			b.WriteString(strings.Repeat("-", total))
		} else {
			for i, c := range row {
				if i > 0 {
					b.WriteString(sep)
				}
				b.WriteString(c.align.pad(c.value, widths[i]))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
