// Package sqlgen renders the SQL statements issued by the store client:
// CREATE TABLE from ordered column definitions, literal and parameter-bound
// INSERTs, simple DELETE/UPDATE-by-condition statements, and naive script
// splitting.
//
// The package deliberately stays dependency-free: it is pure string assembly.
// Identifier quoting is always applied to interpolated table and column
// names; literal quoting doubles embedded single quotes. Caller-supplied
// WHERE conditions are emitted verbatim and are the caller's responsibility.
package sqlgen

import (
	"fmt"
	"strings"
)

// PlaceholderStyle selects how bound statements number their parameters.
type PlaceholderStyle int

const (
	// Question emits "?" (MySQL, SQLite).
	Question PlaceholderStyle = iota
	// Dollar emits "$1", "$2", ... (Postgres).
	Dollar
	// AtP emits "@p1", "@p2", ... (SQL Server).
	AtP
)

// Dialect captures the per-engine SQL surface the generators need: identifier
// quoting, placeholder numbering, and capability flags.
type Dialect struct {
	Name string

	// identOpen/identClose delimit quoted identifiers; occurrences of
	// identClose inside a name are escaped by doubling.
	identOpen  string
	identClose string

	Placeholders PlaceholderStyle

	// CanCreateDatabase is false for engines without a CREATE DATABASE
	// statement (sqlite).
	CanCreateDatabase bool

	// HasTruncate is false for engines where TRUNCATE TABLE must be
	// rendered as DELETE FROM (sqlite).
	HasTruncate bool
}

// Built-in dialects for the engines wired in internal/store/all.
var (
	MySQL = Dialect{
		Name:              "mysql",
		identOpen:         "`",
		identClose:        "`",
		Placeholders:      Question,
		CanCreateDatabase: true,
		HasTruncate:       true,
	}
	Postgres = Dialect{
		Name:              "postgres",
		identOpen:         `"`,
		identClose:        `"`,
		Placeholders:      Dollar,
		CanCreateDatabase: true,
		HasTruncate:       true,
	}
	SQLite = Dialect{
		Name:         "sqlite",
		identOpen:    `"`,
		identClose:   `"`,
		Placeholders: Question,
	}
	MSSQL = Dialect{
		Name:              "mssql",
		identOpen:         "[",
		identClose:        "]",
		Placeholders:      AtP,
		CanCreateDatabase: true,
		HasTruncate:       true,
	}
)

// QuoteIdent quotes a single identifier, escaping the closing delimiter by
// doubling it.
func (d Dialect) QuoteIdent(name string) string {
	escaped := strings.ReplaceAll(name, d.identClose, d.identClose+d.identClose)
	return d.identOpen + escaped + d.identClose
}

// QuoteFQN quotes a possibly schema-qualified name segment by segment, so
// "sales.q4" becomes `sales`.`q4` under the MySQL dialect.
func (d Dialect) QuoteFQN(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = d.QuoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// Placeholder returns the placeholder for the i-th parameter (1-based).
func (d Dialect) Placeholder(i int) string {
	switch d.Placeholders {
	case Dollar:
		return fmt.Sprintf("$%d", i)
	case AtP:
		return fmt.Sprintf("@p%d", i)
	default:
		return "?"
	}
}
