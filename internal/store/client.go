// Package store implements the relational store client: a thin convenience
// wrapper around database/sql that opens one validated connection pool and
// exposes operations for creating databases and tables, inserting rows from
// a tabular frame, running ad-hoc SQL and SQL script files, and deleting or
// updating rows by simple conditions.
//
// The client adds no pooling logic, retries, isolation control, or caching of
// its own; all of that is inherited from database/sql and the engine driver.
// Operations are synchronous and blocking, and the client holds no state
// between calls beyond the shared pool, so its concurrency safety is exactly
// that of *sql.DB.
//
// Two statement-generation paths exist. The legacy path interpolates values
// as escaped literals (see sqlgen.QuoteLiteral) and executes raw
// caller-supplied conditions verbatim; it exists for compatibility and is
// exposed to injection when fed untrusted input. The *Args/*Bound variants
// use driver parameter binding and are the preferred path.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"relstore/internal/config"
	"relstore/internal/metrics"
	"relstore/internal/sqlgen"
	"relstore/internal/tabular"
)

// pingTimeout bounds the eager connectivity check at Open.
const pingTimeout = 5 * time.Second

// defaultIDColumn is used by DeleteByID/UpdateByID when no id column is
// given.
const defaultIDColumn = "id"

// Client wraps one connection pool against a single database target.
type Client struct {
	db     *sql.DB
	drv    Driver
	dbname string
}

// Open resolves the engine backend for cfg, builds the connection string,
// opens a pool, and validates connectivity with one eager round trip. Any
// failure surfaces as a *ConnectError; the client never retries.
func Open(ctx context.Context, cfg config.Config) (*Client, error) {
	drv, err := lookup(cfg.Engine)
	if err != nil {
		return nil, &ConnectError{Engine: cfg.Engine, Host: cfg.Host, Err: err}
	}
	dsn, err := drv.DSN(cfg)
	if err != nil {
		return nil, &ConnectError{Engine: cfg.Engine, Host: cfg.Host, Err: err}
	}
	db, err := sql.Open(drv.Name, dsn)
	if err != nil {
		return nil, &ConnectError{Engine: cfg.Engine, Host: cfg.Host, Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, &ConnectError{Engine: cfg.Engine, Host: cfg.Host, Err: err}
	}

	return &Client{db: db, drv: drv, dbname: cfg.Database}, nil
}

// Close releases the underlying pool.
func (c *Client) Close() error { return c.db.Close() }

// DB exposes the underlying pool for callers that need driver-level access.
func (c *Client) DB() *sql.DB { return c.db }

// Database returns the database name the client was opened against.
func (c *Client) Database() string { return c.dbname }

// Dialect returns the SQL dialect of the client's engine.
func (c *Client) Dialect() sqlgen.Dialect { return c.drv.Dialect }

// observe records one operation in the metrics backend.
func observe(op string, start time.Time, err error) {
	metrics.RecordStatement(op, err, time.Since(start))
}

// CreateDatabase creates a database. When drop is true it first attempts
// DROP DATABASE and ignores any failure from that statement alone (the
// target usually does not exist yet); the CREATE itself propagates failure
// as a *DatabaseError.
func (c *Client) CreateDatabase(ctx context.Context, name string, drop bool) error {
	start := time.Now()
	err := c.createDatabase(ctx, name, drop)
	observe("create_database", start, err)
	return err
}

func (c *Client) createDatabase(ctx context.Context, name string, drop bool) error {
	d := c.drv.Dialect
	if !d.CanCreateDatabase {
		return &DatabaseError{
			Stmt: sqlgen.BuildCreateDatabase(d, name),
			Err:  fmt.Errorf("engine %s: %w", d.Name, ErrUnsupported),
		}
	}
	if drop {
		// Best effort, scoped to exactly this statement.
		if _, err := c.db.ExecContext(ctx, sqlgen.BuildDropDatabase(d, name)); err != nil {
			log.Printf("store: drop database %s: %v (ignored)", name, err)
		}
	}
	stmt := sqlgen.BuildCreateDatabase(d, name)
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return &DatabaseError{Stmt: stmt, Err: err}
	}
	return nil
}

// CreateTable creates a table from ordered column definitions, preserving
// their order in the generated statement. When drop is true it first issues
// DROP TABLE IF EXISTS, ignoring any failure from that statement alone.
func (c *Client) CreateTable(ctx context.Context, table string, cols []sqlgen.Column, drop bool) error {
	start := time.Now()
	err := c.createTable(ctx, table, cols, drop)
	observe("create_table", start, err)
	return err
}

func (c *Client) createTable(ctx context.Context, table string, cols []sqlgen.Column, drop bool) error {
	d := c.drv.Dialect
	stmt, err := sqlgen.BuildCreateTable(d, table, cols)
	if err != nil {
		return &DatabaseError{Stmt: "CREATE TABLE " + table, Err: err}
	}
	if drop {
		if _, err := c.db.ExecContext(ctx, sqlgen.BuildDropTable(d, table)); err != nil {
			log.Printf("store: drop table %s: %v (ignored)", table, err)
		}
	}
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return &DatabaseError{Stmt: stmt, Err: err}
	}
	return nil
}

// Exec executes one arbitrary statement and returns nothing. Execution
// failure surfaces as a *QueryError.
func (c *Client) Exec(ctx context.Context, stmt string) error {
	start := time.Now()
	err := c.exec(ctx, stmt)
	observe("exec", start, err)
	return err
}

func (c *Client) exec(ctx context.Context, stmt string) error {
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return &QueryError{Stmt: stmt, Err: err}
	}
	return nil
}

// ExecArgs executes one statement with driver-bound parameters. This is the
// preferred variant for untrusted values.
func (c *Client) ExecArgs(ctx context.Context, stmt string, args ...any) error {
	start := time.Now()
	var err error
	if _, e := c.db.ExecContext(ctx, stmt, args...); e != nil {
		err = &QueryError{Stmt: stmt, Err: e}
	}
	observe("exec", start, err)
	return err
}

// ExecScript reads the UTF-8 file at path, splits it into statements on ';'
// (see sqlgen.SplitScript for the exact, naive rules), and executes the
// fragments in file order inside one transaction committed at the end. The
// first failing fragment aborts and rolls back the script.
func (c *Client) ExecScript(ctx context.Context, path string) error {
	start := time.Now()
	err := c.execScript(ctx, path)
	observe("exec_script", start, err)
	return err
}

func (c *Client) execScript(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("store: read script %s: %w", path, err)
	}
	stmts := sqlgen.SplitScript(string(raw))
	if len(stmts) == 0 {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return &QueryError{Stmt: "BEGIN", Err: err}
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return &QueryError{Stmt: stmt, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &QueryError{Stmt: "COMMIT", Err: err}
	}
	log.Printf("store: script %s: executed %d statements", path, len(stmts))
	return nil
}

// Query executes a read statement and materializes all rows plus column
// names into a Frame. A statement matching nothing yields an empty frame
// with valid column headers, not an error.
func (c *Client) Query(ctx context.Context, stmt string) (*tabular.Frame, error) {
	return c.QueryArgs(ctx, stmt)
}

// QueryArgs is Query with driver-bound parameters.
func (c *Client) QueryArgs(ctx context.Context, stmt string, args ...any) (*tabular.Frame, error) {
	start := time.Now()
	f, err := c.queryArgs(ctx, stmt, args...)
	observe("query", start, err)
	if f != nil {
		metrics.RecordRows("query", int64(f.Len()))
	}
	return f, err
}

func (c *Client) queryArgs(ctx context.Context, stmt string, args ...any) (*tabular.Frame, error) {
	rows, err := c.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, &QueryError{Stmt: stmt, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Stmt: stmt, Err: err}
	}
	f := tabular.New(cols...)

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{Stmt: stmt, Err: err}
		}
		// Text-protocol drivers hand most values back as []byte; keep
		// frames printable and comparable by converting to string.
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		if err := f.AppendRow(vals...); err != nil {
			return nil, &QueryError{Stmt: stmt, Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Stmt: stmt, Err: err}
	}
	return f, nil
}

// QueryTable is shorthand for SELECT * FROM <table>.
func (c *Client) QueryTable(ctx context.Context, table string) (*tabular.Frame, error) {
	return c.Query(ctx, "SELECT * FROM "+c.drv.Dialect.QuoteFQN(table))
}

// InsertFrame inserts every frame row into table, one literal INSERT per row
// naming all columns in frame order, all inside one transaction committed
// after the loop. A mid-loop failure rolls the whole frame back. When
// truncate is true the table is truncated first, outside the transaction.
//
// Values are interpolated as escaped literals; prefer InsertFrameBound for
// untrusted data.
func (c *Client) InsertFrame(ctx context.Context, f *tabular.Frame, table string, truncate bool) error {
	start := time.Now()
	err := c.insertFrame(ctx, f, table, truncate, false)
	observe("insert_frame", start, err)
	if err == nil {
		metrics.RecordRows("insert", int64(f.Len()))
	}
	return err
}

// InsertFrameBound behaves like InsertFrame but prepares one placeholder
// INSERT and binds every row's values through the driver.
func (c *Client) InsertFrameBound(ctx context.Context, f *tabular.Frame, table string, truncate bool) error {
	start := time.Now()
	err := c.insertFrame(ctx, f, table, truncate, true)
	observe("insert_frame", start, err)
	if err == nil {
		metrics.RecordRows("insert", int64(f.Len()))
	}
	return err
}

func (c *Client) insertFrame(ctx context.Context, f *tabular.Frame, table string, truncate, bound bool) error {
	if f.Width() == 0 {
		return fmt.Errorf("store: insert into %s: frame has no columns", table)
	}
	if truncate {
		if err := c.truncateTable(ctx, table); err != nil {
			return err
		}
	}
	if f.Len() == 0 {
		return nil
	}

	d := c.drv.Dialect
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return &QueryError{Stmt: "BEGIN", Err: err}
	}

	if bound {
		stmtSQL, err := sqlgen.BuildInsertBound(d, table, f.Columns())
		if err != nil {
			_ = tx.Rollback()
			return &QueryError{Stmt: stmtSQL, Err: err}
		}
		stmt, err := tx.PrepareContext(ctx, stmtSQL)
		if err != nil {
			_ = tx.Rollback()
			return &QueryError{Stmt: stmtSQL, Err: err}
		}
		defer stmt.Close()
		for i := 0; i < f.Len(); i++ {
			if _, err := stmt.ExecContext(ctx, f.Row(i)...); err != nil {
				_ = tx.Rollback()
				return &QueryError{Stmt: stmtSQL, Err: err}
			}
		}
	} else {
		for i := 0; i < f.Len(); i++ {
			stmtSQL, err := sqlgen.BuildInsert(d, table, f.Columns(), f.Row(i))
			if err != nil {
				_ = tx.Rollback()
				return &QueryError{Stmt: stmtSQL, Err: err}
			}
			if _, err := tx.ExecContext(ctx, stmtSQL); err != nil {
				_ = tx.Rollback()
				return &QueryError{Stmt: stmtSQL, Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return &QueryError{Stmt: "COMMIT", Err: err}
	}
	return nil
}

// TruncateTable empties a table. Engines without TRUNCATE get DELETE FROM.
func (c *Client) TruncateTable(ctx context.Context, table string) error {
	start := time.Now()
	err := c.truncateTable(ctx, table)
	observe("truncate", start, err)
	return err
}

func (c *Client) truncateTable(ctx context.Context, table string) error {
	stmt := sqlgen.BuildTruncate(c.drv.Dialect, table)
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return &QueryError{Stmt: stmt, Err: err}
	}
	return nil
}

// DeleteByID deletes rows by equality on idColumn ("id" when empty), one
// independent DELETE statement per identifier, in order, with no batching.
// The first failure stops the loop; earlier deletes stay applied.
func (c *Client) DeleteByID(ctx context.Context, table, idColumn string, ids ...any) error {
	if idColumn == "" {
		idColumn = defaultIDColumn
	}
	d := c.drv.Dialect
	for _, id := range ids {
		cond := d.QuoteIdent(idColumn) + " = " + sqlgen.QuoteLiteral(id)
		if err := c.DeleteWhere(ctx, table, cond); err != nil {
			return err
		}
	}
	return nil
}

// DeleteWhere deletes rows matching a caller-supplied raw SQL condition. The
// condition is executed verbatim with no validation or escaping; callers own
// its safety.
func (c *Client) DeleteWhere(ctx context.Context, table, condition string) error {
	start := time.Now()
	stmt := sqlgen.BuildDelete(c.drv.Dialect, table, condition)
	var err error
	if _, e := c.db.ExecContext(ctx, stmt); e != nil {
		err = &QueryError{Stmt: stmt, Err: e}
	}
	observe("delete", start, err)
	return err
}

// UpdateWhere sets one column to a naively quoted new value on rows matching
// a caller-supplied raw condition. Embedded quotes in newValue are not
// escaped on this legacy path; use UpdateWhereBound for untrusted values.
func (c *Client) UpdateWhere(ctx context.Context, table, column, newValue, condition string) error {
	start := time.Now()
	stmt := sqlgen.BuildUpdate(c.drv.Dialect, table, column, newValue, condition)
	var err error
	if _, e := c.db.ExecContext(ctx, stmt); e != nil {
		err = &QueryError{Stmt: stmt, Err: e}
	}
	observe("update", start, err)
	return err
}

// UpdateWhereBound is UpdateWhere with the new value bound through the
// driver.
func (c *Client) UpdateWhereBound(ctx context.Context, table, column string, newValue any, condition string) error {
	start := time.Now()
	stmt := sqlgen.BuildUpdateBound(c.drv.Dialect, table, column, condition)
	var err error
	if _, e := c.db.ExecContext(ctx, stmt, newValue); e != nil {
		err = &QueryError{Stmt: stmt, Err: e}
	}
	observe("update", start, err)
	return err
}

// UpdateByID updates one column on rows where idColumn ("id" when empty)
// equals id, delegating to UpdateWhere.
func (c *Client) UpdateByID(ctx context.Context, table, column, newValue string, id any, idColumn string) error {
	if idColumn == "" {
		idColumn = defaultIDColumn
	}
	d := c.drv.Dialect
	cond := d.QuoteIdent(idColumn) + " = " + sqlgen.QuoteLiteral(id)
	return c.UpdateWhere(ctx, table, column, newValue, cond)
}
