package sqlgen

import (
	"reflect"
	"testing"
)

// TestSplitScript covers the naive split rules: split on ';', strip newlines
// and tabs, drop fragments shorter than five characters.
func TestSplitScript(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			"two statements with blank fragment",
			"INSERT INTO t VALUES (1);\n\nINSERT INTO t VALUES (2);",
			[]string{"INSERT INTO t VALUES (1)", "INSERT INTO t VALUES (2)"},
		},
		{
			"tabs and newlines stripped inside statements",
			"CREATE TABLE t (\n\tid int,\n\tname text\n);",
			[]string{"CREATE TABLE t (id int,name text)"},
		},
		{
			"short fragments dropped",
			"go;;  \n ;SELECT 1 FROM t;",
			[]string{"SELECT 1 FROM t"},
		},
		{
			"empty input",
			"",
			nil,
		},
		{
			"trailing whitespace only",
			";\n;\t;",
			nil,
		},
	}
	for _, tc := range cases {
		got := SplitScript(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: SplitScript = %q; want %q", tc.name, got, tc.want)
		}
	}
}
