package dataset

import (
	"encoding/json"
	"fmt"
)

// ============================================================================
// DATASET — Parsed rows + ordered column names, held in memory
// ============================================================================
// Column order is decided once at ingestion (first row's key order) and is
// never recomputed from later rows. Rows may be sparse: a missing key is null.
//
// A nil *Dataset is a valid empty dataset.
// ============================================================================

// Row maps column name to cell value.
type Row map[string]Value

// Get returns the value stored under column, or null when the key is absent.
func (r Row) Get(column string) Value {
	return r[column]
}

// Dataset is an ordered sequence of rows plus an ordered column list.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New builds a Dataset. Column names must be unique.
// The rows slice is retained, not copied.
func New(columns []string, rows []Row) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c)
		}
		index[c] = i
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Dataset{
		columns: cols,
		index:   index,
		rows:    rows,
	}, nil
}

// MustNew is New for literal fixtures. It panics on duplicate columns.
func MustNew(columns []string, rows []Row) *Dataset {
	ds, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return ds
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// IsEmpty reports whether the dataset has no rows.
func (d *Dataset) IsEmpty() bool { return d.Len() == 0 }

// Columns returns a copy of the ordered column names.
func (d *Dataset) Columns() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	if d == nil {
		return 0
	}
	return len(d.columns)
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.index[name]
	return ok
}

// Row returns row i, or nil when i is out of range.
func (d *Dataset) Row(i int) Row {
	if i < 0 || i >= d.Len() {
		return nil
	}
	return d.rows[i]
}

// Value returns the cell at row i, column name. Out of range reads as null.
func (d *Dataset) Value(i int, column string) Value {
	return d.Row(i).Get(column)
}

// MarshalJSON encodes the rows as an array of objects, the inline-values
// shape charting grammars expect.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	if d.Len() == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(d.rows)
}
