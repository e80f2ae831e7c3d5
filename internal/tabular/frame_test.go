package tabular

import (
	"reflect"
	"testing"
)

func TestAppendRowAndRow(t *testing.T) {
	f := New("id", "name")
	if err := f.AppendRow(1, "a"); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if err := f.AppendRow(2, "b"); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if f.Len() != 2 || f.Width() != 2 {
		t.Fatalf("Len=%d Width=%d; want 2, 2", f.Len(), f.Width())
	}
	if got := f.Row(1); !reflect.DeepEqual(got, []any{2, "b"}) {
		t.Fatalf("Row(1) = %v; want [2 b]", got)
	}
}

func TestAppendRowWidthMismatch(t *testing.T) {
	f := New("id", "name")
	if err := f.AppendRow(1); err == nil {
		t.Fatalf("expected width mismatch error")
	}
}

func TestFromColumns(t *testing.T) {
	f, err := FromColumns([]string{"id", "name"}, [][]any{{1, 2}, {"a", "b"}})
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}
	if f.Len() != 2 {
		t.Fatalf("Len = %d; want 2", f.Len())
	}
	col, ok := f.Column("name")
	if !ok || !reflect.DeepEqual(col, []any{"a", "b"}) {
		t.Fatalf("Column(name) = %v, %v", col, ok)
	}

	if _, err := FromColumns([]string{"id", "name"}, [][]any{{1}, {"a", "b"}}); err == nil {
		t.Fatalf("expected unequal column length error")
	}
}

// TestRecordsRoundTrip checks the lossless conversion between the
// column-oriented and row-oriented representations.
func TestRecordsRoundTrip(t *testing.T) {
	f := New("id", "name")
	_ = f.AppendRow(1, "a")
	_ = f.AppendRow(2, nil)

	recs := f.Records()
	want := []map[string]any{
		{"id": 1, "name": "a"},
		{"id": 2, "name": nil},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("Records = %v; want %v", recs, want)
	}

	back := FromRecords(recs, f.Columns())
	if !reflect.DeepEqual(back.Columns(), f.Columns()) {
		t.Fatalf("columns = %v; want %v", back.Columns(), f.Columns())
	}
	for i := 0; i < f.Len(); i++ {
		if !reflect.DeepEqual(back.Row(i), f.Row(i)) {
			t.Fatalf("row %d = %v; want %v", i, back.Row(i), f.Row(i))
		}
	}
}

func TestFromRecordsDerivedOrder(t *testing.T) {
	recs := []map[string]any{{"b": 2, "a": 1}}
	f := FromRecords(recs, nil)
	if got := f.Columns(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("derived columns = %v; want [a b]", got)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{[]byte("bytes"), "bytes"},
		{42, "42"},
		{"x", "x"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Fatalf("FormatValue(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
