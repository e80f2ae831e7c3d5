package postgres

import (
	"testing"

	"relstore/internal/config"
)

func TestBuildDSN(t *testing.T) {
	dsn, err := buildDSN(config.Config{
		Engine:   "postgres",
		Host:     "db.example:5432",
		User:     "svc",
		Password: "pw",
		Database: "logs",
		Params:   map[string]string{"sslmode": "disable"},
	})
	if err != nil {
		t.Fatalf("buildDSN: %v", err)
	}
	want := "postgres://svc:pw@db.example:5432/logs?sslmode=disable"
	if dsn != want {
		t.Fatalf("buildDSN = %q; want %q", dsn, want)
	}
}

func TestBuildDSNNoCredentials(t *testing.T) {
	dsn, err := buildDSN(config.Config{Host: "localhost", Database: "logs"})
	if err != nil {
		t.Fatalf("buildDSN: %v", err)
	}
	if want := "postgres://localhost/logs"; dsn != want {
		t.Fatalf("buildDSN = %q; want %q", dsn, want)
	}
}

func TestBuildDSNEmptyHost(t *testing.T) {
	if _, err := buildDSN(config.Config{Database: "logs"}); err == nil {
		t.Fatalf("expected error for empty host")
	}
}
