package sqlgen

import (
	"strings"
	"testing"
)

// TestBuildCreateTable verifies that column order is preserved, the clause
// has exactly N comma-separated definitions, and there is no trailing comma.
func TestBuildCreateTable(t *testing.T) {
	cols := []Column{
		{"id", "int NOT NULL AUTO_INCREMENT PRIMARY KEY"},
		{"service", "varchar(20) NOT NULL"},
		{"note", "text"},
	}
	got, err := BuildCreateTable(MySQL, "files_db", cols)
	if err != nil {
		t.Fatalf("BuildCreateTable: %v", err)
	}
	want := "CREATE TABLE `files_db` (`id` int NOT NULL AUTO_INCREMENT PRIMARY KEY, `service` varchar(20) NOT NULL, `note` text)"
	if got != want {
		t.Fatalf("BuildCreateTable = %q; want %q", got, want)
	}
	if n := strings.Count(got, ","); n != len(cols)-1 {
		t.Fatalf("got %d commas; want %d", n, len(cols)-1)
	}
}

func TestBuildCreateTableErrors(t *testing.T) {
	cases := []struct {
		name  string
		table string
		cols  []Column
	}{
		{"empty table", "", []Column{{"id", "int"}}},
		{"no columns", "t", nil},
		{"empty column name", "t", []Column{{"", "int"}}},
		{"empty definition", "t", []Column{{"id", ""}}},
	}
	for _, tc := range cases {
		if _, err := BuildCreateTable(MySQL, tc.table, tc.cols); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

// TestBuildInsert verifies one literal INSERT naming all columns in order,
// with escaped literals and NULL sentinels.
func TestBuildInsert(t *testing.T) {
	got, err := BuildInsert(MySQL, "t", []string{"id", "name", "note"}, []any{1, "o'brien", "nan"})
	if err != nil {
		t.Fatalf("BuildInsert: %v", err)
	}
	want := "INSERT INTO `t` (`id`,`name`,`note`) VALUES ('1','o''brien',NULL)"
	if got != want {
		t.Fatalf("BuildInsert = %q; want %q", got, want)
	}
}

func TestBuildInsertWidthMismatch(t *testing.T) {
	if _, err := BuildInsert(MySQL, "t", []string{"a", "b"}, []any{1}); err == nil {
		t.Fatalf("expected width mismatch error")
	}
}

// TestBuildInsertBound verifies per-dialect placeholder rendering.
func TestBuildInsertBound(t *testing.T) {
	cases := []struct {
		d    Dialect
		want string
	}{
		{MySQL, "INSERT INTO `t` (`a`,`b`) VALUES (?,?)"},
		{Postgres, `INSERT INTO "t" ("a","b") VALUES ($1,$2)`},
		{MSSQL, "INSERT INTO [t] ([a],[b]) VALUES (@p1,@p2)"},
	}
	for _, tc := range cases {
		got, err := BuildInsertBound(tc.d, "t", []string{"a", "b"})
		if err != nil {
			t.Fatalf("%s: BuildInsertBound: %v", tc.d.Name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: BuildInsertBound = %q; want %q", tc.d.Name, got, tc.want)
		}
	}
}

func TestBuildDelete(t *testing.T) {
	got := BuildDelete(MySQL, "files", "`id` = '10'")
	want := "DELETE FROM `files` WHERE `id` = '10'"
	if got != want {
		t.Fatalf("BuildDelete = %q; want %q", got, want)
	}
}

// TestBuildUpdate documents the legacy path: the new value is wrapped in
// quotes without escaping.
func TestBuildUpdate(t *testing.T) {
	got := BuildUpdate(MySQL, "files", "file_name", "new.txt", "`id` = '10'")
	want := "UPDATE `files` SET `file_name` = 'new.txt' WHERE `id` = '10'"
	if got != want {
		t.Fatalf("BuildUpdate = %q; want %q", got, want)
	}
}

func TestBuildUpdateBound(t *testing.T) {
	got := BuildUpdateBound(Postgres, "files", "file_name", `"id" = $2`)
	want := `UPDATE "files" SET "file_name" = $1 WHERE "id" = $2`
	if got != want {
		t.Fatalf("BuildUpdateBound = %q; want %q", got, want)
	}
}

// TestBuildTruncate verifies the DELETE FROM fallback for engines without
// TRUNCATE.
func TestBuildTruncate(t *testing.T) {
	cases := []struct {
		d    Dialect
		want string
	}{
		{MySQL, "TRUNCATE TABLE `t`"},
		{Postgres, `TRUNCATE TABLE "t"`},
		{SQLite, `DELETE FROM "t"`},
	}
	for _, tc := range cases {
		if got := BuildTruncate(tc.d, "t"); got != tc.want {
			t.Fatalf("%s: BuildTruncate = %q; want %q", tc.d.Name, got, tc.want)
		}
	}
}
