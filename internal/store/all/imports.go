// Package all wires all built-in engines into the store factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) runs the init functions of each engine package, which register
// their drivers with the store registry. After importing it the following
// engine kinds are available to store.Open:
//
//   - "mysql"    (relstore/internal/store/mysql)
//   - "postgres" (relstore/internal/store/postgres)
//   - "sqlite"   (relstore/internal/store/sqlite)
//   - "mssql"    (relstore/internal/store/mssql)
//
// Binaries that want only a subset of engines can blank-import the specific
// engine packages instead of this one.
package all

import (
	_ "relstore/internal/store/mssql"
	_ "relstore/internal/store/mysql"
	_ "relstore/internal/store/postgres"
	_ "relstore/internal/store/sqlite"
)
