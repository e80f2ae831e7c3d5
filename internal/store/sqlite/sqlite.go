// Package sqlite wires the SQLite engine into the store factory using the
// modernc.org/sqlite driver. Registration happens in init.
//
// SQLite has no server: Config.Database is the database file path (or
// ":memory:"), Host and credentials are ignored, CREATE DATABASE is
// unsupported, and TRUNCATE TABLE is rendered as DELETE FROM by the dialect.
package sqlite

import (
	"fmt"
	"net/url"
	"strings"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"relstore/internal/config"
	"relstore/internal/sqlgen"
	"relstore/internal/store"
)

func init() {
	store.Register("sqlite", store.Driver{
		Name:    "sqlite",
		Dialect: sqlgen.SQLite,
		DSN:     buildDSN,
	})
}

// buildDSN renders a file: DSN from the database path. Extra Params pass
// through as query parameters (e.g. cache=shared).
func buildDSN(cfg config.Config) (string, error) {
	path := strings.TrimSpace(cfg.Database)
	if path == "" {
		return "", fmt.Errorf("sqlite: database file path must not be empty")
	}
	dsn := "file:" + path
	if len(cfg.Params) > 0 {
		q := url.Values{}
		for k, v := range cfg.Params {
			q.Set(k, v)
		}
		dsn += "?" + q.Encode()
	}
	return dsn, nil
}
