// Package parser is a low-level wrapper around tree-sitter that extracts
// definition symbols into an Index.
//
// It does not handle persistence — see onoma.Indexer for that.
package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/onoma"
	"github.com/jward/onoma/internal/onomaerr"
)

// Context carries per-parse tuning. ExistingTree, when set, lets the
// underlying tree-sitter parser perform an incremental reparse instead of
// starting from scratch. Nothing in onoma currently supplies one — see
// DESIGN.md's Open Questions — but the option is plumbed through so a
// future caller (for instance the indexer, keyed by file path) can wire it
// up without changing this signature.
type Context struct {
	ExistingTree *sitter.Tree
}

// WithExistingTree returns a copy of ctx configured to reparse from tree.
func (c Context) WithExistingTree(tree *sitter.Tree) Context {
	c.ExistingTree = tree
	return c
}

// Output is the result of parsing one file.
type Output struct {
	Index *Index
	Tree  *sitter.Tree
}

// Parser reads a source file and extracts symbols via a language-specific
// structural query.
type Parser struct{}

// New constructs a Parser. Parser holds no state of its own — every call
// to Parse derives its grammar and query from the target file's language.
func New() *Parser {
	return &Parser{}
}

// Parse reads the file at path, derives its Language from the extension,
// and runs that language's structural symbol query against the parse
// tree, returning a deduplicated Index plus the resulting tree (useful to
// a future caller wanting incremental reparse).
func (p *Parser) Parse(ctx context.Context, path string, pctx Context) (*Output, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	lang, ok := onoma.LanguageForExtension(ext)
	if !ok {
		return nil, &onomaerr.InvalidURIError{URI: path}
	}

	grammar, ok := GrammarFor(lang)
	if !ok {
		return nil, &onomaerr.InvalidLanguageError{Language: string(lang)}
	}

	queryStr, ok := QueryFor(lang)
	if !ok {
		return nil, &onomaerr.InvalidLanguageError{Language: string(lang)}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &onomaerr.InvalidFileError{Path: path, Err: err}
	}

	sitterParser := sitter.NewParser()
	sitterParser.SetLanguage(grammar)

	tree, err := sitterParser.ParseCtx(ctx, pctx.ExistingTree, content)
	if err != nil {
		return nil, &onomaerr.InvalidLanguageError{Language: string(lang), Err: err}
	}

	query, err := sitter.NewQuery([]byte(queryStr), grammar)
	if err != nil {
		return nil, &onomaerr.InvalidQueryError{Language: string(lang), Err: err}
	}

	cursor := sitter.NewQueryCursor()
	cursor.Exec(query, tree.RootNode())

	index := NewIndex()

	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}

		for _, capture := range match.Captures {
			captureName := query.CaptureNameForId(capture.Index)

			kind, recognized := onoma.ParseSymbolKind(captureName)
			if !recognized {
				continue
			}

			name := NormalizeText(capture.Node.Content(content))
			if name == "" {
				continue
			}

			start := capture.Node.StartPoint()
			end := capture.Node.EndPoint()

			occ := onoma.Occurrence{
				Language: lang,
				Path:     path,
				Range: onoma.RangeFromZeroBased(
					int(start.Row), int(start.Column),
					int(end.Row), int(end.Column),
				),
				Roles: []onoma.Role{onoma.RoleDefinition},
			}

			index.Append(kind, name, occ)
		}
	}

	return &Output{Index: index, Tree: tree}, nil
}

// NormalizeText applies onoma's symbol-name normalization to raw captured
// text, exported here so callers constructing synthetic occurrences for
// tests can match the parser's own behavior exactly.
func NormalizeText(text string) string {
	return onoma.NormalizeSymbolName(text)
}
