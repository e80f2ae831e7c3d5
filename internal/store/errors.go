package store

import (
	"errors"
	"fmt"
)

// ErrUnsupported is wrapped by operations the selected engine cannot perform,
// e.g. CREATE DATABASE on sqlite.
var ErrUnsupported = errors.New("operation not supported by engine")

// ConnectError reports a failed connection attempt at Open time: unreachable
// host, rejected credentials, or an unknown engine. It is fatal to the client
// instance; the client never retries. Credentials are not included in the
// message.
type ConnectError struct {
	Engine string
	Host   string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("store: connect %s host %q: %v", e.Engine, e.Host, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// DatabaseError reports a DDL statement rejected by the backend (CREATE
// DATABASE, CREATE TABLE). The backend error is wrapped unmodified.
type DatabaseError struct {
	Stmt string
	Err  error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("store: ddl %q: %v", e.Stmt, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// QueryError reports any non-DDL statement rejected by the backend: malformed
// SQL, constraint violation, or connectivity loss mid-call. The backend error
// is wrapped unmodified; no retry and no partial-failure recovery happens on
// this path.
type QueryError struct {
	Stmt string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("store: statement %q: %v", e.Stmt, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
