package model

import (
	"strings"
)

// Table is a grid of cells organized in rows. Rows may have different lengths.
type Table struct {
	Rows [][]Cell
}

// Cell represents a table cell. A null cell is one the extractor reported as
// missing, as opposed to present but empty.
type Cell struct {
	Text string
	Null bool
}

// TextCell returns a cell holding s
func TextCell(s string) Cell { return Cell{Text: s} }

// NullCell returns a null cell
func NullCell() Cell { return Cell{Null: true} }

// IsBlank reports whether the cell is null or contains only whitespace
func (c Cell) IsBlank() bool {
	return c.Null || strings.TrimSpace(c.Text) == ""
}

// NewTable creates a table from rows of strings
func NewTable(rows [][]string) *Table {
	table := &Table{Rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		table.Rows[i] = make([]Cell, len(row))
		for j, s := range row {
			table.Rows[i][j] = TextCell(s)
		}
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the width of the widest row
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}
