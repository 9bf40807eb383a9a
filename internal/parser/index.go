package parser

import "github.com/jward/onoma"

// Index is a deduplicating set of symbols produced by a single parse.
// Deduplication follows onoma.Symbol's kind-agnostic identity: a Function
// and a Method capture over the same name and location collapse into one
// entry, whichever kind was captured first.
type Index struct {
	order []string
	bySet map[string]*onoma.Symbol
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{bySet: make(map[string]*onoma.Symbol)}
}

// Append attaches an occurrence to the named symbol, creating it (with the
// given kind) on first sight. Later occurrences of the same identity keep
// the kind recorded at creation.
func (idx *Index) Append(kind onoma.SymbolKind, name string, occ onoma.Occurrence) {
	sym := onoma.NewSymbol(kind, name)
	sym.AddOccurrence(occ)
	key := sym.IdentityKey()

	if existing, ok := idx.bySet[key]; ok {
		existing.AddOccurrence(occ)
		return
	}

	idx.order = append(idx.order, key)
	idx.bySet[key] = &sym
}

// Symbols returns the deduplicated symbols in the order they were first
// observed.
func (idx *Index) Symbols() []onoma.Symbol {
	out := make([]onoma.Symbol, 0, len(idx.order))
	for _, key := range idx.order {
		out = append(out, *idx.bySet[key])
	}
	return out
}
