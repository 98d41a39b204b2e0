package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Open opens a SQLite database using the modernc.org/sqlite driver with the
// point functions registered.
//
// For file-based databases, pass a path like "./runs.sqlite". For in-memory
// databases, pass ":memory:"; the pool is then limited to one connection
// because every connection would otherwise see its own empty database.
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterPointFunctions(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
