package sqlgen

import (
	"fmt"
	"strings"
)

// Column pairs a column name with its raw SQL definition fragment, e.g.
// {"id", "int NOT NULL AUTO_INCREMENT PRIMARY KEY"}. The definition is
// emitted as-is; the name is identifier-quoted. Order is significant and is
// preserved in the generated CREATE TABLE.
type Column struct {
	Name string
	Def  string
}

// BuildCreateTable renders CREATE TABLE <table> (<name1> <def1>, ...) from
// ordered column definitions.
func BuildCreateTable(d Dialect, table string, cols []Column) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("sqlgen: table name must not be empty")
	}
	if len(cols) == 0 {
		return "", fmt.Errorf("sqlgen: at least one column is required")
	}
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", fmt.Errorf("sqlgen: column with empty name in table %s", table)
		}
		def := strings.TrimSpace(c.Def)
		if def == "" {
			return "", fmt.Errorf("sqlgen: column %s missing definition", name)
		}
		parts = append(parts, d.QuoteIdent(name)+" "+def)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteFQN(table), strings.Join(parts, ", ")), nil
}

// BuildInsert renders one literal single-row INSERT naming all columns in
// order. Values go through QuoteLiteral (quote doubling, missing sentinels
// as NULL).
func BuildInsert(d Dialect, table string, columns []string, row []any) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("sqlgen: insert needs at least one column")
	}
	if len(row) != len(columns) {
		return "", fmt.Errorf("sqlgen: row has %d values; want %d", len(row), len(columns))
	}
	names := make([]string, len(columns))
	vals := make([]string, len(row))
	for i, c := range columns {
		names[i] = d.QuoteIdent(c)
		vals[i] = QuoteLiteral(row[i])
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteFQN(table), strings.Join(names, ","), strings.Join(vals, ",")), nil
}

// BuildInsertBound renders a single-row INSERT with dialect placeholders for
// use with prepared statements. Values are bound by the driver, so no literal
// escaping applies.
func BuildInsertBound(d Dialect, table string, columns []string) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("sqlgen: insert needs at least one column")
	}
	names := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, c := range columns {
		names[i] = d.QuoteIdent(c)
		marks[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteFQN(table), strings.Join(names, ","), strings.Join(marks, ",")), nil
}

// BuildDelete renders DELETE FROM <table> WHERE <condition>. The condition is
// a caller-supplied raw SQL fragment emitted verbatim.
func BuildDelete(d Dialect, table, condition string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", d.QuoteFQN(table), condition)
}

// BuildUpdate renders UPDATE <table> SET <column> = '<newValue>' WHERE
// <condition>. The new value is wrapped in single quotes without escaping,
// matching the legacy update path; embedded quotes in newValue will break the
// statement. BuildUpdateBound is the safe variant.
func BuildUpdate(d Dialect, table, column, newValue, condition string) string {
	return fmt.Sprintf("UPDATE %s SET %s = '%s' WHERE %s",
		d.QuoteFQN(table), d.QuoteIdent(column), newValue, condition)
}

// BuildUpdateBound renders the same UPDATE with a placeholder for the new
// value.
func BuildUpdateBound(d Dialect, table, column, condition string) string {
	return fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s",
		d.QuoteFQN(table), d.QuoteIdent(column), d.Placeholder(1), condition)
}

// BuildTruncate renders TRUNCATE TABLE <table>, or DELETE FROM <table> for
// engines without TRUNCATE.
func BuildTruncate(d Dialect, table string) string {
	if d.HasTruncate {
		return "TRUNCATE TABLE " + d.QuoteFQN(table)
	}
	return "DELETE FROM " + d.QuoteFQN(table)
}

// BuildCreateDatabase renders CREATE DATABASE <name>.
func BuildCreateDatabase(d Dialect, name string) string {
	return "CREATE DATABASE " + d.QuoteIdent(name)
}

// BuildDropDatabase renders DROP DATABASE <name>.
func BuildDropDatabase(d Dialect, name string) string {
	return "DROP DATABASE " + d.QuoteIdent(name)
}

// BuildDropTable renders DROP TABLE IF EXISTS <table>.
func BuildDropTable(d Dialect, table string) string {
	return "DROP TABLE IF EXISTS " + d.QuoteFQN(table)
}
