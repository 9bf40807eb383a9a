package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/onoma"
	"github.com/jward/onoma/internal/onomaerr"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func symbolNames(out *Output) []string {
	names := make([]string, 0)
	for _, sym := range out.Index.Symbols() {
		names = append(names, sym.Name)
	}
	return names
}

func TestParse_GoFunctionsAndTypes(t *testing.T) {
	path := writeSource(t, "main.go", `package main

func main() {}

type Server struct{}

func (s *Server) Handle() {}
`)

	p := New()
	out, err := p.Parse(context.Background(), path, Context{})
	require.NoError(t, err)

	names := symbolNames(out)
	assert.Contains(t, names, "main", "function declaration")
	assert.Contains(t, names, "Server", "struct type_spec")
	assert.Contains(t, names, "Handle", "method declaration")
}

func TestParse_UnsupportedExtensionReturnsInvalidURI(t *testing.T) {
	path := writeSource(t, "unknown.xyz", "nonsense")

	p := New()
	_, err := p.Parse(context.Background(), path, Context{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestParse_MissingFileReturnsInvalidFile(t *testing.T) {
	p := New()
	_, err := p.Parse(context.Background(), filepath.Join(t.TempDir(), "missing.go"), Context{})
	require.Error(t, err)
	var fileErr *onomaerr.InvalidFileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestParse_DistinguishesAliasFromStruct(t *testing.T) {
	path := writeSource(t, "types.go", `package main

type Alias = string

type Thing struct{}
`)

	p := New()
	out, err := p.Parse(context.Background(), path, Context{})
	require.NoError(t, err)

	byName := make(map[string]onoma.SymbolKind)
	for _, sym := range out.Index.Symbols() {
		byName[sym.Name] = sym.Kind
	}

	assert.Equal(t, onoma.KindTypeAlias, byName["Alias"])
	assert.Equal(t, onoma.KindStruct, byName["Thing"])
}

func TestParse_RustFunctionAndStruct(t *testing.T) {
	path := writeSource(t, "lib.rs", `fn handle_request() {}

struct Server {}
`)

	p := New()
	out, err := p.Parse(context.Background(), path, Context{})
	require.NoError(t, err)

	names := symbolNames(out)
	assert.Contains(t, names, "handle_request")
	assert.Contains(t, names, "Server")
}

func TestNormalizeText_TrimsAndNormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "foo\nbar", NormalizeText("  foo\r\nbar  "))
}

func TestQueryFor_AllSupportedLanguagesHaveAQuery(t *testing.T) {
	for _, lang := range []onoma.Language{
		onoma.LanguageGo, onoma.LanguageRust, onoma.LanguageLua,
		onoma.LanguageTypeScript, onoma.LanguageTypeScriptJSX,
		onoma.LanguageJavaScript, onoma.LanguageJavaScriptJSX, onoma.LanguageClojure,
	} {
		_, ok := QueryFor(lang)
		assert.True(t, ok, "missing query for %s", lang)
	}
}

func TestGrammarFor_AllSupportedLanguagesHaveAGrammar(t *testing.T) {
	for _, lang := range []onoma.Language{
		onoma.LanguageGo, onoma.LanguageRust, onoma.LanguageLua,
		onoma.LanguageTypeScript, onoma.LanguageTypeScriptJSX,
		onoma.LanguageJavaScript, onoma.LanguageJavaScriptJSX, onoma.LanguageClojure,
	} {
		_, ok := GrammarFor(lang)
		assert.True(t, ok, "missing grammar for %s", lang)
	}
}
