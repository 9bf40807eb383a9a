// Package store is the SQLite data access layer for onoma's two-table
// index: one row per indexed file, one row per definition symbol found in
// it. Every write goes through a single transaction per file (see
// ReplaceFileSymbols) so a crash mid-index never leaves half a file's
// symbols behind.
package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jward/onoma/internal/onomaerr"
)

// Store wraps the SQLite connection backing one workspace set's index.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at dbPath in WAL /
// normal-synchronous mode with foreign keys enforced, and applies the
// embedded schema migration. Migration failure is fatal — callers should
// treat a non-nil error here as unable to construct an Indexer or Resolver.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, &onomaerr.DatabaseFileError{Path: dbPath, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &onomaerr.DatabaseFileError{Path: dbPath, Err: err}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, &onomaerr.MigrationFailedError{Err: err}
	}
	return s, nil
}

// OpenExisting prepares a read-only handle to dbPath without creating it
// or running migrations — the Resolver's startup mode. sql.Open's
// connection is lazy, and mode=ro refuses to create a missing file, so
// construction always succeeds; a database that doesn't exist yet only
// surfaces as an error from the first query against it, per the
// Resolver's contract of tolerating "not yet indexed" without itself
// creating the store.
func OpenExisting(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro&_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, &onomaerr.DatabaseFileError{Path: dbPath, Err: err}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS file (
  id          INTEGER PRIMARY KEY,
  path        TEXT NOT NULL UNIQUE,
  indexed_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS symbol (
  id            INTEGER PRIMARY KEY,
  kind          TEXT NOT NULL,
  name          TEXT NOT NULL,
  file_id       INTEGER NOT NULL REFERENCES file(id) ON DELETE CASCADE,
  start_line    INTEGER,
  start_column  INTEGER,
  end_line      INTEGER,
  end_column    INTEGER,
  indexed_at    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_symbol_file_id ON symbol(file_id);
CREATE INDEX IF NOT EXISTS idx_symbol_kind ON symbol(kind);
`

func (s *Store) migrate() error {
	_, err := s.db.Exec(schemaDDL)
	return err
}
