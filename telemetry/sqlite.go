package telemetry

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, registered as "sqlite"
)

// SQLiteRecorder appends one row per parse run to a local SQLite database,
// the way a build-tooling CLI built on top of this parser might keep a
// history of parse runs for later inspection. It is never imported by
// package parser; only a caller that wants persistence constructs one.
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLiteRecorder opens (creating if necessary) the database at dsn and
// ensures the runs table exists.
func OpenSQLiteRecorder(dsn string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open sqlite: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		tokens INTEGER NOT NULL,
		statements INTEGER NOT NULL,
		max_depth INTEGER NOT NULL,
		succeeded INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		summary TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("telemetry: create schema: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

// Record inserts one row describing s.
func (r *SQLiteRecorder) Record(s Summary) error {
	const insert = `INSERT INTO runs
		(id, file, tokens, statements, max_depth, succeeded, elapsed_ms, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(insert, s.RunID, s.File, s.Tokens, s.Statements, s.MaxDepth,
		boolToInt(s.Succeeded), s.Elapsed.Milliseconds(), s.String())
	if err != nil {
		return fmt.Errorf("telemetry: insert run: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
