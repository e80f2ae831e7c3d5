// Package tabular implements the column-oriented in-memory dataset used as
// input to bulk inserts and as the materialized result of queries.
//
// A Frame is an ordered set of named columns of equal length; rows are the
// positional tuples across columns. The representation converts losslessly
// to and from a row-oriented []map[string]any form via Records/FromRecords.
// Frames are plain values with no retained connection to any database.
package tabular

import (
	"fmt"
	"sort"
)

// Frame holds named columns in a fixed order. The zero value is not usable;
// construct with New, FromColumns, or FromRecords.
type Frame struct {
	names []string
	cols  [][]any
}

// New returns an empty Frame with the given column names, in order.
func New(names ...string) *Frame {
	f := &Frame{
		names: append([]string(nil), names...),
		cols:  make([][]any, len(names)),
	}
	return f
}

// FromColumns builds a Frame from parallel column slices. All columns must
// have equal length.
func FromColumns(names []string, cols [][]any) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("tabular: %d names for %d columns", len(names), len(cols))
	}
	for i := 1; i < len(cols); i++ {
		if len(cols[i]) != len(cols[0]) {
			return nil, fmt.Errorf("tabular: column %q has %d values; want %d",
				names[i], len(cols[i]), len(cols[0]))
		}
	}
	f := New(names...)
	for i := range cols {
		f.cols[i] = append([]any(nil), cols[i]...)
	}
	return f, nil
}

// FromRecords builds a Frame from row-oriented records. The column order is
// taken from 'order' when provided; otherwise it is derived from the first
// record's keys, sorted for determinism. Missing keys become nil cells.
func FromRecords(recs []map[string]any, order []string) *Frame {
	if len(order) == 0 && len(recs) > 0 {
		for k := range recs[0] {
			order = append(order, k)
		}
		sort.Strings(order)
	}
	f := New(order...)
	for _, rec := range recs {
		row := make([]any, len(order))
		for i, name := range order {
			row[i] = rec[name]
		}
		// Width always matches by construction.
		_ = f.AppendRow(row...)
	}
	return f
}

// Columns returns the column names in order. The returned slice is shared;
// callers must not modify it.
func (f *Frame) Columns() []string { return f.names }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.names) }

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0])
}

// AppendRow appends one positional row. The value count must match Width.
func (f *Frame) AppendRow(values ...any) error {
	if len(values) != len(f.names) {
		return fmt.Errorf("tabular: row has %d values; want %d", len(values), len(f.names))
	}
	for i, v := range values {
		f.cols[i] = append(f.cols[i], v)
	}
	return nil
}

// Row returns the i-th positional row as a fresh slice.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.cols))
	for c := range f.cols {
		row[c] = f.cols[c][i]
	}
	return row
}

// Column returns the values of the named column, or false when absent.
// The returned slice is shared; callers must not modify it.
func (f *Frame) Column(name string) ([]any, bool) {
	for i, n := range f.names {
		if n == name {
			return f.cols[i], true
		}
	}
	return nil, false
}

// Records converts the Frame to its row-oriented form.
func (f *Frame) Records() []map[string]any {
	out := make([]map[string]any, f.Len())
	for i := range out {
		rec := make(map[string]any, len(f.names))
		for c, name := range f.names {
			rec[name] = f.cols[c][i]
		}
		out[i] = rec
	}
	return out
}

// FormatValue renders one cell for display: nil becomes "NULL", []byte is
// shown as text, fmt.Stringer values use their String method, everything
// else goes through fmt.Sprint.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}
