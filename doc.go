// Package onoma is a fast, language-agnostic semantic symbol indexer and
// fuzzy finder.
//
// Onoma watches a set of source-code workspaces, extracts named definitions
// from every supported source file via structural (tree-sitter) grammars,
// persists them in a local SQLite store, and serves streaming ranked
// queries against that store. It is intended to sit behind an interactive
// editor front-end that displays matches as the user types.
//
// # Pipeline
//
// The package is organized around four subsystems:
//
//   - Parser (internal/parser): reads a source file and extracts
//     definition-kind symbols using a language-specific structural query.
//   - [Indexer]: maintains the persistent symbol store, with transactional
//     per-file replacement and parallel per-file parsing.
//   - [Watcher]: bridges filesystem change notifications to incremental
//     indexing and de-indexing, with debouncing.
//   - [Resolver]: streams stored symbols through a fuzzy matcher and a
//     heuristic scorer, ranking candidates against a query.
//
// # Usage
//
//	idx, err := onoma.NewIndexer("/tmp/onoma-storage", []string{"/path/to/repo"})
//	if err != nil { ... }
//	defer idx.Close()
//
//	if errs := idx.IndexWorkspaces(ctx); len(errs) > 0 { ... }
//
//	res, err := onoma.NewResolver("/tmp/onoma-storage", []string{"/path/to/repo"})
//	if err != nil { ... }
//	defer res.Close()
//
//	for symbol := range res.Query(ctx, "handleRequest", onoma.Context{}) {
//		fmt.Println(symbol.Path, symbol.Name, symbol.Score)
//	}
//
// # Supported Languages
//
//   - Go (.go)
//   - Rust (.rs)
//   - Lua (.lua)
//   - Clojure (.clj)
//   - TypeScript (.ts, .tsx) / JavaScript (.js, .jsx)
package onoma
