package store

import (
	"context"
	"database/sql"
)

const runsSchema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    source TEXT,
    index_kind TEXT,
    candidates INTEGER,
    target INTEGER,
    input_size INTEGER,
    created_at TEXT
);
`

const samplesSchema = `
CREATE TABLE IF NOT EXISTS samples (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    coords BLOB NOT NULL,
    payload BLOB,
    PRIMARY KEY (run_id, seq)
);
`

// EnsureSchema creates the runs and samples tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range []string{runsSchema, samplesSchema} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
