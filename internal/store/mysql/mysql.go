// Package mysql wires the MySQL engine into the store factory. Registration
// happens in init; importing relstore/internal/store/all (or this package
// directly, blank or otherwise) makes the "mysql" engine available.
//
// MySQL is the primary engine: the client's backtick identifier quoting,
// TRUNCATE TABLE, and CREATE/DROP DATABASE semantics all map onto it
// directly.
package mysql

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"relstore/internal/config"
	"relstore/internal/sqlgen"
	"relstore/internal/store"
)

func init() {
	store.Register("mysql", store.Driver{
		Name:    "mysql",
		Dialect: sqlgen.MySQL,
		DSN:     buildDSN,
	})
}

// buildDSN renders a go-sql-driver DSN (user:pass@tcp(host)/db) from the
// resolved config. Extra Params pass through as driver parameters.
func buildDSN(cfg config.Config) (string, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return "", fmt.Errorf("mysql: host must not be empty")
	}
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = cfg.Host
	mc.DBName = cfg.Database
	if len(cfg.Params) > 0 {
		mc.Params = make(map[string]string, len(cfg.Params))
		for k, v := range cfg.Params {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN(), nil
}
