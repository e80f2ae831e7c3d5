// Package mssql wires the SQL Server engine into the store factory using the
// go-mssqldb driver. Registration happens in init. The rendered DSN is
// validated with msdsn.Parse before it ever reaches sql.Open, to fail fast on
// obvious mistakes.
package mssql

import (
	"fmt"
	"net/url"
	"strings"

	// Registers the "sqlserver" database/sql driver.
	_ "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"

	"relstore/internal/config"
	"relstore/internal/sqlgen"
	"relstore/internal/store"
)

func init() {
	store.Register("mssql", store.Driver{
		Name:    "sqlserver",
		Dialect: sqlgen.MSSQL,
		DSN:     buildDSN,
	})
}

// buildDSN renders a sqlserver:// URL from the resolved config; the database
// name travels as the "database" query parameter per go-mssqldb convention.
func buildDSN(cfg config.Config) (string, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return "", fmt.Errorf("mssql: host must not be empty")
	}
	q := url.Values{}
	if cfg.Database != "" {
		q.Set("database", cfg.Database)
	}
	for k, v := range cfg.Params {
		q.Set(k, v)
	}
	u := url.URL{
		Scheme:   "sqlserver",
		Host:     cfg.Host,
		RawQuery: q.Encode(),
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	dsn := u.String()
	if _, err := msdsn.Parse(dsn); err != nil {
		return "", fmt.Errorf("mssql dsn: %w", err)
	}
	return dsn, nil
}
