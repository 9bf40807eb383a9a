package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jward/onoma/internal/onomaerr"
)

// ReplaceFileSymbols upserts the file row for path and atomically replaces
// its symbol set with symbols, in a single transaction: the transaction
// commits with exactly the given symbols attached to path, or the store is
// left exactly as it was.
//
// Narrowed from a cascading-delete-then-reinsert protocol over many
// child tables down to this schema's single child table (symbol).
func (s *Store) ReplaceFileSymbols(path string, symbols []ParsedSymbol) error {
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("begin transaction: %w", err)}
	}
	defer tx.Rollback()

	var fileID int64
	err = tx.QueryRow(
		`INSERT INTO file (path, indexed_at) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET indexed_at = excluded.indexed_at
		 RETURNING id`,
		path, now,
	).Scan(&fileID)
	if err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("upsert file: %w", err)}
	}

	if _, err := tx.Exec("DELETE FROM symbol WHERE file_id = ?", fileID); err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("delete prior symbols: %w", err)}
	}

	stmt, err := tx.Prepare(
		`INSERT INTO symbol (kind, name, file_id, start_line, start_column, end_line, end_column, indexed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("prepare symbol insert: %w", err)}
	}
	defer stmt.Close()

	for _, sym := range symbols {
		if _, err := stmt.Exec(sym.Kind, sym.Name, fileID,
			sym.StartLine, sym.StartColumn, sym.EndLine, sym.EndColumn, now); err != nil {
			return &onomaerr.QueryFailedError{Err: fmt.Errorf("insert symbol %q: %w", sym.Name, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}

// Deindex removes every file whose path begins with prefix, cascading to
// their symbols via the foreign key. One statement handles both a single
// file deletion and a whole directory subtree.
func (s *Store) Deindex(prefix string) error {
	_, err := s.db.Exec(`DELETE FROM file WHERE path LIKE ? ESCAPE '\'`, likePrefix(prefix))
	if err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("deindex %q: %w", prefix, err)}
	}
	return nil
}

// likePrefix escapes SQLite LIKE metacharacters in prefix so that a literal
// path containing '%' or '_' cannot widen the match, then appends the
// wildcard suffix.
func likePrefix(prefix string) string {
	escaped := make([]byte, 0, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '%', '_', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, prefix[i])
	}
	return string(escaped) + "%"
}

// FileIDByPath returns the id of the file row at path, if indexed.
func (s *Store) FileIDByPath(path string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM file WHERE path = ?", path).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, &onomaerr.QueryFailedError{Err: err}
	}
	return id, true, nil
}
