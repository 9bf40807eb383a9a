package onoma

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/onoma/internal/store"
)

func querySymbolNames(t *testing.T, idx *Indexer) []string {
	t.Helper()
	var names []string
	require.NoError(t, idx.store.QuerySymbols(nil, func(r store.SymbolRow) bool {
		names = append(names, r.Name)
		return true
	}))
	return names
}

func newTestIndexer(t *testing.T, workspaces ...string) *Indexer {
	t.Helper()
	idx, err := NewIndexer(t.TempDir(), workspaces)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewIndexer_CreatesStore(t *testing.T) {
	dir := t.TempDir()
	idx, err := NewIndexer(t.TempDir(), []string{dir})
	require.NoError(t, err)
	defer idx.Close()

	assert.Equal(t, []string{dir}, idx.GetWorkspaces())
}

func TestIsInsideWorkspace(t *testing.T) {
	root := t.TempDir()
	idx := newTestIndexer(t, root)

	assert.True(t, idx.IsInsideWorkspace(root))
	assert.True(t, idx.IsInsideWorkspace(filepath.Join(root, "sub", "file.go")))
	assert.False(t, idx.IsInsideWorkspace("/somewhere/else/file.go"))
}

func TestIndex_SingleGoFile(t *testing.T) {
	root := t.TempDir()
	idx := newTestIndexer(t, root)

	path := writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n")

	require.NoError(t, idx.Index(context.Background(), path))

	assert.Contains(t, querySymbolNames(t, idx), "main")
}

func TestIndexFile_ReplacesSymbolsOnReindex(t *testing.T) {
	root := t.TempDir()
	idx := newTestIndexer(t, root)
	path := writeFile(t, root, "main.go", "package main\n\nfunc main() {}\nfunc helper() {}\n")

	require.NoError(t, idx.indexFile(context.Background(), path))
	// The package clause contributes a second "main" (kind package).
	assert.ElementsMatch(t, []string{"main", "main", "helper"}, querySymbolNames(t, idx))

	writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n")
	require.NoError(t, idx.indexFile(context.Background(), path))
	assert.Equal(t, []string{"main", "main"}, querySymbolNames(t, idx))
}

func TestIndex_InvalidPathOutsideWorkspace(t *testing.T) {
	idx := newTestIndexer(t, t.TempDir())
	err := idx.Index(context.Background(), "/definitely/not/a/workspace/file.go")
	require.Error(t, err)
}

func TestDeindex_RemovesIndexedFile(t *testing.T) {
	root := t.TempDir()
	idx := newTestIndexer(t, root)
	path := writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n")

	require.NoError(t, idx.indexFile(context.Background(), path))
	require.NoError(t, idx.Deindex(context.Background(), path))
	assert.Empty(t, querySymbolNames(t, idx))
}

func TestIndexWorkspaces_WalksDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package main\nfunc A() {}\n")
	writeFile(t, root, "sub/b.go", "package sub\nfunc B() {}\n")
	writeFile(t, root, "vendor/skip.go", "package vendor\nfunc Skip() {}\n")

	idx := newTestIndexer(t, root)
	errs := idx.IndexWorkspaces(context.Background())
	assert.Empty(t, errs)

	names := querySymbolNames(t, idx)
	assert.Contains(t, names, "A")
	assert.Contains(t, names, "B")
	assert.NotContains(t, names, "Skip")
}
