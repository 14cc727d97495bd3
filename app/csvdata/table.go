package csvdata

// Package csvdata exposes a loaded telemetry log as an immutable table of
// named columns. All queries are pure reads over state captured at
// construction time, so a Table is safe for concurrent readers; there are
// no writers after New returns.

import (
	"strconv"

	"telemview/app/fileloader"
)

// Table is the in-memory column store for one telemetry log. Column order
// equals file order, headers are taken verbatim from the file (duplicates
// included), and all columns share one row count.
type Table struct {
	headers []string
	columns [][]string
	// numeric holds the parsed form of a column when every cell in it
	// parses as a float, mirroring the recorder's numeric channels.
	// Entries for non-numeric columns are nil.
	numeric [][]float64
	rows    int
}

// New builds a Table from a loaded dataset. The dataset is copied into
// column-major form; the Table holds no reference to the loader after
// construction.
func New(ds *fileloader.Dataset) *Table {
	cols := ds.ColumnCount()
	t := &Table{
		headers: append([]string(nil), ds.Headers...),
		columns: make([][]string, cols),
		numeric: make([][]float64, cols),
		rows:    ds.RowCount(),
	}
	for i := 0; i < cols; i++ {
		t.columns[i] = ds.Column(i)
		t.numeric[i] = parseNumericColumn(t.columns[i])
	}
	return t
}

// parseNumericColumn returns the float form of a column, or nil if any
// cell fails to parse.
func parseNumericColumn(cells []string) []float64 {
	parsed := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil
		}
		parsed[i] = v
	}
	return parsed
}

// ColumnCount returns the number of columns, fixed for the Table's
// lifetime.
func (t *Table) ColumnCount() int {
	return len(t.headers)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return t.rows
}

// HeaderList returns the headers in column order.
func (t *Table) HeaderList() []string {
	return append([]string(nil), t.headers...)
}

// IndexList returns the column indices 0..ColumnCount-1 in order.
func (t *Table) IndexList() []int {
	indices := make([]int, len(t.headers))
	for i := range indices {
		indices[i] = i
	}
	return indices
}
