package onoma

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ch <-chan ResolvedSymbol) []ResolvedSymbol {
	t.Helper()
	var out []ResolvedSymbol
	timeout := time.After(5 * time.Second)
	for {
		select {
		case sym, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, sym)
		case <-timeout:
			t.Fatal("timed out draining query channel")
		}
	}
}

func TestQuery_ReturnsIndexedSymbol(t *testing.T) {
	root := t.TempDir()
	storageDir := t.TempDir()
	writeFile(t, root, "main.go", "package main\n\nfunc handleRequest() {}\n")

	idx, err := NewIndexer(storageDir, []string{root})
	require.NoError(t, err)
	require.Empty(t, idx.IndexWorkspaces(context.Background()))
	idx.Close()

	res, err := NewResolver(storageDir, []string{root})
	require.NoError(t, err)
	defer res.Close()

	results := drain(t, res.Query(context.Background(), "handleRequest", Context{}))
	require.NotEmpty(t, results)
	assert.Equal(t, "handleRequest", results[0].Name)
}

func TestQuery_EmptyTextBypassesFuzzyFilter(t *testing.T) {
	root := t.TempDir()
	storageDir := t.TempDir()
	writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n")

	idx, err := NewIndexer(storageDir, []string{root})
	require.NoError(t, err)
	require.Empty(t, idx.IndexWorkspaces(context.Background()))
	idx.Close()

	res, err := NewResolver(storageDir, []string{root})
	require.NoError(t, err)
	defer res.Close()

	results := drain(t, res.Query(context.Background(), "", Context{}))
	assert.NotEmpty(t, results)
}

func TestQuery_NoMatchReturnsEmptyStream(t *testing.T) {
	root := t.TempDir()
	storageDir := t.TempDir()
	writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n")

	idx, err := NewIndexer(storageDir, []string{root})
	require.NoError(t, err)
	require.Empty(t, idx.IndexWorkspaces(context.Background()))
	idx.Close()

	res, err := NewResolver(storageDir, []string{root})
	require.NoError(t, err)
	defer res.Close()

	results := drain(t, res.Query(context.Background(), "zzzzzznomatch", Context{}))
	assert.Empty(t, results)
}

func TestQuery_FiltersBySymbolKind(t *testing.T) {
	root := t.TempDir()
	storageDir := t.TempDir()
	writeFile(t, root, "main.go", "package main\n\nfunc main() {}\n\nvar topLevel = 1\n")

	idx, err := NewIndexer(storageDir, []string{root})
	require.NoError(t, err)
	require.Empty(t, idx.IndexWorkspaces(context.Background()))
	idx.Close()

	res, err := NewResolver(storageDir, []string{root})
	require.NoError(t, err)
	defer res.Close()

	results := drain(t, res.Query(context.Background(), "", Context{}.WithSymbolKinds(KindVariable)))
	for _, r := range results {
		assert.Equal(t, KindVariable, r.Kind)
	}
}
