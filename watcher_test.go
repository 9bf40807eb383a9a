package onoma

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, idx *Indexer) *Watcher {
	t.Helper()
	w, err := NewWatcher(idx, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	return w
}

func TestWatcher_RunFullIndex(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\nfunc main() {}\n")

	idx := newTestIndexer(t, root)
	w := newTestWatcher(t, idx)

	errs := w.RunFullIndex(context.Background())
	assert.Empty(t, errs)
	assert.Contains(t, querySymbolNames(t, idx), "main")
}

func TestWatcher_DetectsNewFileAfterStart(t *testing.T) {
	root := t.TempDir()
	idx := newTestIndexer(t, root)
	w := newTestWatcher(t, idx)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	go func() {
		close(started)
		_ = w.Start(ctx)
	}()
	<-started
	time.Sleep(100 * time.Millisecond) // let the watch list populate

	writeFile(t, root, "added.go", "package main\nfunc Added() {}\n")

	require.Eventually(t, func() bool {
		return containsName(querySymbolNames(t, idx), "Added")
	}, 3*time.Second, 50*time.Millisecond)

	w.Stop()
}

func TestWatcher_DetectsDeletion(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "gone.go", "package main\nfunc Gone() {}\n")

	idx := newTestIndexer(t, root)
	require.NoError(t, idx.indexFile(context.Background(), path))
	require.Contains(t, querySymbolNames(t, idx), "Gone")

	w := newTestWatcher(t, idx)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Start(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool {
		return !containsName(querySymbolNames(t, idx), "Gone")
	}, 3*time.Second, 50*time.Millisecond)

	w.Stop()
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	idx := newTestIndexer(t, t.TempDir())
	w := newTestWatcher(t, idx)
	w.Stop()
	w.Stop()
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func TestWatcher_AddWatchRecursiveSkipsVendor(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor", "pkg"), 0o755))

	idx := newTestIndexer(t, root)
	w := newTestWatcher(t, idx)
	defer w.fsw.Close()

	require.NoError(t, w.addWatchRecursive(root))
	for _, watched := range w.fsw.WatchList() {
		assert.NotContains(t, watched, filepath.Join("vendor", "pkg"))
	}
}
