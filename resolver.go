package onoma

import (
	"context"
	"log/slog"
	"time"

	"github.com/jward/onoma/internal/fuzzy"
	"github.com/jward/onoma/internal/scoring"
	"github.com/jward/onoma/internal/store"
)

// queryChannelCapacity is the Resolver's bounded channel size. A query
// that fills this buffer and still can't get a consumer to drain within
// sendTimeout is abandoned rather than blocking the producing goroutine
// (and the pool connection it holds) indefinitely.
const queryChannelCapacity = 100

// sendTimeout bounds how long the Resolver will wait for a slow consumer
// before abandoning the rest of a query's results.
const sendTimeout = 2 * time.Second

// Resolver streams stored symbols through a fuzzy matcher and heuristic
// scorer, ranking candidates against a query string.
type Resolver struct {
	store *store.Store
	log   *slog.Logger
}

// NewResolver opens the same store file an Indexer constructed with the
// same storageDir and workspaces would use, in read-only-friendly mode.
// It does not create the database — a query against a store that doesn't
// exist yet surfaces as an error from the first Query call.
func NewResolver(storageDir string, workspaces []string) (*Resolver, error) {
	dbPath := StorePath(storageDir, workspaces)
	s, err := store.OpenExisting(dbPath)
	if err != nil {
		return nil, err
	}
	return &Resolver{store: s, log: slog.Default()}, nil
}

// Close releases the Resolver's store handle.
func (r *Resolver) Close() error {
	return r.store.Close()
}

// Query streams ranked ResolvedSymbols matching text through a bounded
// channel. The channel is closed when the background search completes,
// the consumer stops draining it (abandoned after sendTimeout), or the
// caller's context is canceled.
//
// A result is dropped (never sent) when: the candidate kind isn't in
// qctx.SymbolKinds (if set), text is non-empty and the fuzzy matcher finds
// no match against either candidate string, or the computed score falls
// below scoring.DefaultScore.
func (r *Resolver) Query(ctx context.Context, text string, qctx Context) <-chan ResolvedSymbol {
	out := make(chan ResolvedSymbol, queryChannelCapacity)

	go func() {
		defer close(out)

		kinds := kindStrings(qctx.SymbolKinds)
		delivered := 0

		err := r.store.QuerySymbols(kinds, func(row store.SymbolRow) bool {
			resolved, ok := r.scoreRow(row, text, qctx)
			if !ok {
				return true
			}

			select {
			case out <- resolved:
				delivered++
				return true
			case <-ctx.Done():
				return false
			case <-time.After(sendTimeout):
				r.log.Error("query: consumer too slow, abandoning remaining results", "delivered", delivered)
				return false
			}
		})
		if err != nil {
			r.log.Error("query: store error", "error", err)
		}
		r.log.Info("query complete", "query", text, "delivered", delivered)
	}()

	return out
}

// scoreRow runs the fuzzy matcher and scorer against one stored row,
// reporting ok=false when the row should be dropped.
func (r *Resolver) scoreRow(row store.SymbolRow, text string, qctx Context) (ResolvedSymbol, bool) {
	var matches []scoring.FuzzyMatch

	if text != "" {
		candidates := []string{row.Path + ":" + row.Name, row.Name}
		hits := fuzzy.Run(text, candidates)
		if len(hits) == 0 {
			return ResolvedSymbol{}, false
		}
		matches = make([]scoring.FuzzyMatch, len(hits))
		for i, h := range hits {
			matches[i] = scoring.FuzzyMatch{RawScore: h.Score, Exact: h.Exact}
		}
	}

	score := scoring.CalculateScore(scoring.Input{
		Kind:        SymbolKind(row.Kind),
		Path:        row.Path,
		CurrentFile: qctx.CurrentFile,
		Matches:     matches,
	})
	if score < scoring.DefaultScore {
		return ResolvedSymbol{}, false
	}

	return ResolvedSymbol{
		ID:          row.ID,
		Kind:        SymbolKind(row.Kind),
		Name:        row.Name,
		Path:        row.Path,
		Score:       score,
		StartLine:   row.StartLine,
		StartColumn: row.StartColumn,
		EndLine:     row.EndLine,
		EndColumn:   row.EndColumn,
	}, true
}

func kindStrings(kinds []SymbolKind) []string {
	if len(kinds) == 0 {
		return nil
	}
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
