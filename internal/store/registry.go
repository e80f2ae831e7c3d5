package store

import (
	"fmt"
	"sort"
	"sync"

	"relstore/internal/config"
	"relstore/internal/sqlgen"
)

// Driver describes an engine backend registered with the store factory:
// the database/sql driver to open, how to render a DSN from a Config, and
// the SQL dialect the statement generators should use.
type Driver struct {
	// Name is the database/sql driver name, e.g. "mysql", "pgx".
	Name string

	// Dialect selects identifier quoting and placeholder style.
	Dialect sqlgen.Dialect

	// DSN renders a driver connection string from a resolved Config.
	DSN func(cfg config.Config) (string, error)
}

var (
	regMu   sync.RWMutex
	drivers = map[string]Driver{}
)

// Register makes an engine available to Open under the given kind. It is
// typically called from backend packages' init functions; importing
// relstore/internal/store/all registers all built-in engines.
func Register(engine string, d Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	drivers[engine] = d
}

// lookup resolves a registered engine.
func lookup(engine string) (Driver, error) {
	regMu.RLock()
	d, ok := drivers[engine]
	regMu.RUnlock()
	if !ok {
		return Driver{}, fmt.Errorf("store: unknown engine %q (registered: %v)", engine, Engines())
	}
	return d, nil
}

// Engines returns the registered engine kinds, sorted.
func Engines() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(drivers))
	for k := range drivers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
