package mssql

import (
	"strings"
	"testing"

	"relstore/internal/config"
)

func TestBuildDSN(t *testing.T) {
	dsn, err := buildDSN(config.Config{
		Engine:   "mssql",
		Host:     "db.example:1433",
		User:     "sa",
		Password: "pw",
		Database: "logs",
	})
	if err != nil {
		t.Fatalf("buildDSN: %v", err)
	}
	if !strings.HasPrefix(dsn, "sqlserver://") {
		t.Fatalf("dsn = %q; want sqlserver:// prefix", dsn)
	}
	for _, want := range []string{"sa:pw@", "db.example:1433", "database=logs"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn = %q; want substring %q", dsn, want)
		}
	}
}

func TestBuildDSNEmptyHost(t *testing.T) {
	if _, err := buildDSN(config.Config{Database: "logs"}); err == nil {
		t.Fatalf("expected error for empty host")
	}
}
