// Package postgres wires the Postgres engine into the store factory using
// the pgx v5 database/sql driver. Registration happens in init.
package postgres

import (
	"fmt"
	"net/url"
	"strings"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	"relstore/internal/config"
	"relstore/internal/sqlgen"
	"relstore/internal/store"
)

func init() {
	store.Register("postgres", store.Driver{
		Name:    "pgx",
		Dialect: sqlgen.Postgres,
		DSN:     buildDSN,
	})
}

// buildDSN renders a postgres:// URL from the resolved config. Extra Params
// pass through as query parameters (e.g. sslmode).
func buildDSN(cfg config.Config) (string, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return "", fmt.Errorf("postgres: host must not be empty")
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   cfg.Host,
		Path:   "/" + cfg.Database,
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	if len(cfg.Params) > 0 {
		q := url.Values{}
		for k, v := range cfg.Params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
