package store

import (
	"fmt"
	"strings"

	"github.com/jward/onoma/internal/onomaerr"
)

// QuerySymbols streams every symbol row matching kinds (all kinds if kinds
// is empty) through visit, one row at a time, stopping early if visit
// returns false. The kind list is interpolated as SQL string literals
// rather than bound parameters — safe here because SymbolKind is a closed,
// compile-time enum, never user input.
//
// Streaming rather than materializing the whole result set lets the
// Resolver apply backpressure (a bounded channel with a send-timeout) to a
// store that may hold far more symbols than any one query will want.
func (s *Store) QuerySymbols(kinds []string, visit func(SymbolRow) bool) error {
	query := `SELECT symbol.id, symbol.kind, symbol.name, file.path,
		symbol.start_line, symbol.start_column, symbol.end_line, symbol.end_column
		FROM symbol JOIN file ON symbol.file_id = file.id`

	if len(kinds) > 0 {
		query += " WHERE symbol.kind IN (" + kindLiteralList(kinds) + ")"
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return &onomaerr.QueryFailedError{Err: fmt.Errorf("query symbols: %w", err)}
	}
	defer rows.Close()

	for rows.Next() {
		var row SymbolRow
		if err := rows.Scan(&row.ID, &row.Kind, &row.Name, &row.Path,
			&row.StartLine, &row.StartColumn, &row.EndLine, &row.EndColumn); err != nil {
			return &onomaerr.QueryFailedError{Err: fmt.Errorf("scan symbol row: %w", err)}
		}
		if !visit(row) {
			break
		}
	}
	return rows.Err()
}

// kindLiteralList renders kinds as a comma-separated list of single-quoted
// SQL string literals, escaping any embedded quote.
func kindLiteralList(kinds []string) string {
	quoted := make([]string, len(kinds))
	for i, k := range kinds {
		quoted[i] = "'" + strings.ReplaceAll(k, "'", "''") + "'"
	}
	return strings.Join(quoted, ",")
}
