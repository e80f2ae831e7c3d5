package tabular

import (
	"reflect"
	"testing"
)

func frameFor(t *testing.T, rows ...[]any) *Frame {
	t.Helper()
	f := New("id", "name")
	for _, r := range rows {
		if err := f.AppendRow(r...); err != nil {
			t.Fatalf("AppendRow: %v", err)
		}
	}
	return f
}

func TestDedupKeepLast(t *testing.T) {
	f := frameFor(t, []any{1, "old"}, []any{2, "two"}, []any{1, "new"})
	got := Dedup(f, []string{"id"}, KeepLast)
	if got.Len() != 2 {
		t.Fatalf("Len = %d; want 2", got.Len())
	}
	if !reflect.DeepEqual(got.Row(0), []any{1, "new"}) {
		t.Fatalf("row 0 = %v; want the last occurrence", got.Row(0))
	}
	if !reflect.DeepEqual(got.Row(1), []any{2, "two"}) {
		t.Fatalf("row 1 = %v; want [2 two]", got.Row(1))
	}
}

func TestDedupKeepFirst(t *testing.T) {
	f := frameFor(t, []any{1, "old"}, []any{1, "new"})
	got := Dedup(f, []string{"id"}, KeepFirst)
	if got.Len() != 1 {
		t.Fatalf("Len = %d; want 1", got.Len())
	}
	if !reflect.DeepEqual(got.Row(0), []any{1, "old"}) {
		t.Fatalf("row 0 = %v; want the first occurrence", got.Row(0))
	}
}

// TestDedupCompositeKey checks that distinct composite keys survive.
func TestDedupCompositeKey(t *testing.T) {
	f := frameFor(t, []any{1, "a"}, []any{1, "b"}, []any{1, "a"})
	got := Dedup(f, []string{"id", "name"}, KeepLast)
	if got.Len() != 2 {
		t.Fatalf("Len = %d; want 2", got.Len())
	}
}

// TestDedupUnknownKey verifies that an unknown key column disables
// de-duplication instead of corrupting the frame.
func TestDedupUnknownKey(t *testing.T) {
	f := frameFor(t, []any{1, "a"}, []any{1, "a"})
	if got := Dedup(f, []string{"missing"}, KeepLast); got.Len() != 2 {
		t.Fatalf("Len = %d; want 2 (pass-through)", got.Len())
	}
}
